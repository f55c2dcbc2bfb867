package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inspirehub/transport/http/response"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health reports process liveness.
// @Summary Health check
// @Description Report that the service is up.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Service is healthy"
// @Router /v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	response.WithMessage(w, http.StatusOK, "ok")
}

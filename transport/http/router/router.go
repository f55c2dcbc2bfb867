package router

import (
	"inspirehub/internal/handlers/auth"
	"inspirehub/internal/handlers/booking"
	"inspirehub/internal/handlers/document"
	"inspirehub/internal/handlers/health"
	"inspirehub/internal/handlers/member"
	"inspirehub/internal/handlers/notice"
	"inspirehub/internal/handlers/resource"
	"inspirehub/internal/handlers/schedule"
	"inspirehub/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Member   member.Handler
	Resource resource.Handler
	Booking  booking.Handler
	Schedule schedule.Handler
	Notice   notice.Handler
	Document document.Handler
	Health   health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.APIKey)
		routerGroup.Use(r.AuthMiddleware.Auth)
		routerGroup.Use(r.AuthMiddleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Member.Router(routerGroup)
		r.DomainHandlers.Resource.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Notice.Router(routerGroup)
		r.DomainHandlers.Document.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}

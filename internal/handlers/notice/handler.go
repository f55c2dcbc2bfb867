package notice

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"inspirehub/infras/otel"
	"inspirehub/internal/domains/notice/model"
	"inspirehub/internal/domains/notice/model/dto"
	"inspirehub/internal/domains/notice/service"
	"inspirehub/shared"
	"inspirehub/shared/constant"
	gDto "inspirehub/shared/dto"
	"inspirehub/shared/validator"
	"inspirehub/transport/http/response"
)

type Handler struct {
	service service.Notice
	otel    otel.Otel
}

func New(service service.Notice, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notices", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateNotice)
		routerGroup.Get("/", handler.GetNotices)
		routerGroup.Get("/mynotices", handler.GetMyNotices)
		routerGroup.Get("/{id}", handler.GetNoticeByID)
		routerGroup.Patch("/{id}", handler.UpdateNotice)
		routerGroup.Delete("/{id}", handler.DeleteNotice)
	})
}

// CreateNotice handles the creation of a new billing notice.
// @Summary Create a new notice
// @Description Create a billing notice addressed to a member.
// @Tags Notice
// @Accept json
// @Produce json
// @Param request body dto.CreateNoticeRequest true "Create Notice Request"
// @Success 201 {object} response.Message "Notice created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notices [post]
// @Security BearerAuth
func (handler *Handler) CreateNotice(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateNotice")
	defer scope.End()

	req := dto.CreateNoticeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create notice")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Notice created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Notice created successfully")
}

// GetNotices retrieves all notices based on query parameters.
// @Summary Get all notices
// @Description Retrieve all billing notices with optional filtering and pagination.
// @Tags Notice
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param member_id query string false "Filter by member ID"
// @Param settled query boolean false "Filter by settled flag"
// @Success 200 {object} response.Data[dto.GetNoticesResponse] "List of notices"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notices [get]
// @Security BearerAuth
func (handler *Handler) GetNotices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if memberID := r.URL.Query().Get(model.FieldMemberID); memberID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldMemberID,
			Operator: gDto.FilterOperatorEq,
			Value:    memberID,
			Table:    model.TableName,
		})
	}

	if settled := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldSettled)); settled != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSettled,
			Operator: gDto.FilterOperatorEq,
			Value:    *settled,
			Table:    model.TableName,
		})
	}

	notices, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notices retrieved successfully")

	response.WithJSON(w, http.StatusOK, notices)
}

// GetMyNotices retrieves notices addressed to the calling member.
// @Summary Get my notices
// @Description Retrieve all billing notices addressed to the calling member.
// @Tags Notice
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetNoticesResponse] "List of the member's notices"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notices/mynotices [get]
// @Security BearerAuth
func (handler *Handler) GetMyNotices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyNotices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	notices, err := handler.service.GetMyNotices(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get member notices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Member notices retrieved successfully")

	response.WithJSON(w, http.StatusOK, notices)
}

// GetNoticeByID retrieves a notice by its ID.
// @Summary Get a notice by ID
// @Description Retrieve a billing notice by its unique identifier.
// @Tags Notice
// @Accept json
// @Produce json
// @Param id path string true "Notice ID"
// @Success 200 {object} response.Data[dto.NoticeResponse] "Notice details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notices/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetNoticeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNoticeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	notice, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notice by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notice retrieved successfully")

	response.WithJSON(w, http.StatusOK, notice)
}

// UpdateNotice updates an existing notice by its ID.
// @Summary Update a notice by ID
// @Description Update the details of an existing billing notice, including marking it settled.
// @Tags Notice
// @Accept json
// @Produce json
// @Param id path string true "Notice ID"
// @Param request body dto.UpdateNoticeRequest true "Update Notice Request"
// @Success 200 {object} response.Message "Notice updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notices/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateNotice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateNotice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateNoticeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update notice")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Notice updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Notice updated successfully")
}

// DeleteNotice deletes a notice by its ID.
// @Summary Delete a notice by ID
// @Description Delete a billing notice using its unique identifier.
// @Tags Notice
// @Accept json
// @Produce json
// @Param id path string true "Notice ID"
// @Success 200 {object} response.Message "Notice deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notices/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteNotice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteNotice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete notice")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Notice deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Notice deleted successfully")
}

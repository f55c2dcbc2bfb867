package member

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"inspirehub/infras/otel"
	"inspirehub/internal/domains/member/model"
	"inspirehub/internal/domains/member/model/dto"
	"inspirehub/internal/domains/member/service"
	"inspirehub/shared"
	"inspirehub/shared/constant"
	gDto "inspirehub/shared/dto"
	"inspirehub/shared/validator"
	"inspirehub/transport/http/response"
)

type Handler struct {
	service service.Member
	otel    otel.Otel
}

func New(service service.Member, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/members", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMember)
		routerGroup.Get("/", handler.GetMembers)
		routerGroup.Get("/{id}", handler.GetMemberByID)
		routerGroup.Patch("/{id}", handler.UpdateMember)
		routerGroup.Delete("/{id}", handler.DeleteMember)
	})
}

// CreateMember handles the creation of a new member account by staff.
// @Summary Create a new member
// @Description Create a member account with the provided details.
// @Tags Member
// @Accept json
// @Produce json
// @Param request body dto.CreateMemberRequest true "Create Member Request"
// @Success 201 {object} response.Message "Member created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/members [post]
// @Security BearerAuth
func (handler *Handler) CreateMember(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMember")
	defer scope.End()

	req := dto.CreateMemberRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create member")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Member created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Member created successfully")
}

// GetMembers retrieves all members based on query parameters.
// @Summary Get all members
// @Description Retrieve all members with optional filtering and pagination.
// @Tags Member
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param email query string false "Filter by email"
// @Param level query string false "Filter by level (admin, staff, member)"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetMembersResponse] "List of members"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/members [get]
// @Security BearerAuth
func (handler *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMembers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if email := r.URL.Query().Get(model.FieldEmail); email != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.TableName,
		})
	}

	if level := r.URL.Query().Get(model.FieldLevel); level != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLevel,
			Operator: gDto.FilterOperatorEq,
			Value:    level,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	members, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get members")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Members retrieved successfully")

	response.WithJSON(w, http.StatusOK, members)
}

// GetMemberByID retrieves a member by their ID.
// @Summary Get a member by ID
// @Description Retrieve a member by their unique identifier.
// @Tags Member
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} response.Data[dto.MemberResponse] "Member details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/members/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMemberByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMemberByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	member, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get member by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Member retrieved successfully")

	response.WithJSON(w, http.StatusOK, member)
}

// UpdateMember updates an existing member by their ID.
// @Summary Update a member by ID
// @Description Update the details of an existing member account.
// @Tags Member
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body dto.UpdateMemberRequest true "Update Member Request"
// @Success 200 {object} response.Message "Member updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/members/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMember")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMemberRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update member")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Member updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Member updated successfully")
}

// DeleteMember deletes a member by their ID.
// @Summary Delete a member by ID
// @Description Delete a member account using its unique identifier.
// @Tags Member
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} response.Message "Member deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/members/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMember")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete member")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Member deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Member deleted successfully")
}

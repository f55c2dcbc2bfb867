package service


import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"inspirehub/config"
	"inspirehub/infras/otel"
	"inspirehub/internal/domains/notice/model"
	"inspirehub/internal/domains/notice/model/dto"
	"inspirehub/internal/domains/notice/repository"
	"inspirehub/shared"
	"inspirehub/shared/constant"
	gDto "inspirehub/shared/dto"
	"inspirehub/shared/failure"
)

type Notice interface {
	Create(ctx context.Context, req dto.CreateNoticeRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetNoticesResponse, error)
	GetMyNotices(ctx context.Context, req gDto.QueryParams) (dto.GetNoticesResponse, error)
	Get(ctx context.Context, id string) (dto.NoticeResponse, error)
	Update(ctx context.Context, req dto.UpdateNoticeRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Notice
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Notice, cfg *config.Config, otel otel.Otel) Notice {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateNoticeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create notice")

		return fmt.Errorf("failed to create notice: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetNoticesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notices")

		return res, fmt.Errorf("failed to count notices: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notices")

		return res, fmt.Errorf("failed to get notices: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// GetMyNotices lists notices addressed to the calling member.
func (s *serviceImpl) GetMyNotices(ctx context.Context, req gDto.QueryParams) (res dto.GetNoticesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMyNotices")
	defer scope.End()
	defer scope.TraceIfError(err)

	member, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if member == constant.Empty {
		return res, failure.Unauthorized("missing member identity") //nolint:wrapcheck
	}

	return s.GetAll(ctx, req, repository.ForMember(member))
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.NoticeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	notice, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get notice")

		return res, fmt.Errorf("failed to get notice: %w", err)
	}

	if notice.ID == constant.Empty {
		return res, failure.NotFound("notice not found") //nolint:wrapcheck
	}

	res.FromModel(notice)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateNoticeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateNoticeRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if notice exists")

		return fmt.Errorf("failed to check if notice exists: %w", err)
	}

	if !exist {
		log.Error().Msg("notice not found")

		return failure.NotFound("notice not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update notice")

		return fmt.Errorf("failed to update notice: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if notice exists")

		return fmt.Errorf("failed to check if notice exists: %w", err)
	}

	if !exist {
		log.Error().Msg("notice not found")

		return failure.NotFound("notice not found") //nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete notice")

		return fmt.Errorf("failed to delete notice: %w", err)
	}

	return nil
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"inspirehub/config"
	"inspirehub/infras/otel"
	bookingRepo "inspirehub/internal/domains/booking/repository"
	resourceModel "inspirehub/internal/domains/resource/model"
	resourceRepo "inspirehub/internal/domains/resource/repository"
	"inspirehub/internal/domains/schedule"
	"inspirehub/internal/domains/schedule/dto"
	"inspirehub/shared"
	"inspirehub/shared/constant"
	gDto "inspirehub/shared/dto"
	"inspirehub/shared/failure"
	"inspirehub/shared/timezone"
)

type Schedule interface {
	Availability(ctx context.Context, resourceID, date string) (dto.AvailabilityResponse, error)
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	bookings  bookingRepo.Booking
	resources resourceRepo.Resource
	cfg       *config.Config
	otel      otel.Otel
	policy    schedule.Policy
}

func New(bookings bookingRepo.Booking, resources resourceRepo.Resource, cfg *config.Config, otel otel.Otel) Schedule {
	return &serviceImpl{
		bookings:  bookings,
		resources: resources,
		cfg:       cfg,
		otel:      otel,
		policy:    schedule.PolicyFromConfig(cfg),
	}
}

// Availability returns the hourly grid for one resource and date with every
// active booking overlaid. The grid is always computed from live bookings so
// a member never selects against a stale view.
func (s *serviceImpl) Availability(ctx context.Context, resourceID, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = timezone.Parse(constant.CalendarFormat, date); err != nil {
		return res, failure.BadRequestFromString("date must be formatted YYYY-MM-DD") //nolint:wrapcheck
	}

	if _, err = s.resource(ctx, resourceID); err != nil {
		return res, err
	}

	grid, err := s.classifiedGrid(ctx, resourceID, date)
	if err != nil {
		return res, err
	}

	res.FromGrid(resourceID, date, grid)

	return res, nil
}

// Quote prices a prospective range after validating it fits on the current
// grid. Nothing is persisted; the quote holds no slots.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = timezone.Parse(constant.CalendarFormat, req.BookingDate); err != nil {
		return res, failure.BadRequestFromString("booking_date must be formatted YYYY-MM-DD") //nolint:wrapcheck
	}

	resource, err := s.resource(ctx, req.ResourceID)
	if err != nil {
		return res, err
	}

	grid, err := s.classifiedGrid(ctx, req.ResourceID, req.BookingDate)
	if err != nil {
		return res, err
	}

	if _, err = s.policy.Select(grid, req.StartHour, req.DurationHours); err != nil {
		return res, err
	}

	breakdown := s.policy.Cost(resource.HourlyRate, req.StartHour, req.DurationHours)

	res.FromBreakdown(req, breakdown)

	return res, nil
}

func (s *serviceImpl) resource(ctx context.Context, id string) (resourceModel.Resource, error) {
	resource, err := s.resources.Get(ctx, shared.FilterByID(id, resourceModel.FieldID, resourceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource")

		return resource, fmt.Errorf("failed to get resource: %w", err)
	}

	if resource.ID == constant.Empty {
		return resource, failure.NotFound("resource not found") //nolint:wrapcheck
	}

	return resource, nil
}

func (s *serviceImpl) classifiedGrid(ctx context.Context, resourceID, date string) (schedule.Grid, error) {
	bookings, err := s.bookings.GetAll(ctx, gDto.QueryParams{}, bookingRepo.ActiveForResourceDate(resourceID, date))
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch bookings for availability")

		return nil, fmt.Errorf("failed to fetch bookings for availability: %w", err)
	}

	return s.policy.Classify(s.policy.BuildGrid(), bookings), nil
}

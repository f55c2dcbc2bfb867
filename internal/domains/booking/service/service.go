package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"inspirehub/config"
	"inspirehub/infras/kafka"
	"inspirehub/infras/otel"
	"inspirehub/internal/domains/booking/event"
	"inspirehub/internal/domains/booking/model"
	"inspirehub/internal/domains/booking/model/dto"
	"inspirehub/internal/domains/booking/repository"
	resourceModel "inspirehub/internal/domains/resource/model"
	resourceRepo "inspirehub/internal/domains/resource/repository"
	"inspirehub/internal/domains/schedule"
	"inspirehub/shared"
	"inspirehub/shared/cache"
	"inspirehub/shared/constant"
	gDto "inspirehub/shared/dto"
	"inspirehub/shared/failure"
	"inspirehub/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Accept(ctx context.Context, id string) error
	Reject(ctx context.Context, id string, req dto.RejectBookingRequest) error
	Cancel(ctx context.Context, id string) error
	Sweep(ctx context.Context, now time.Time) (int, error)
}

type serviceImpl struct {
	repo     repository.Booking
	resRepo  resourceRepo.Resource
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	producer kafka.Client
	policy   schedule.Policy
}

func New(repo repository.Booking, resRepo resourceRepo.Resource, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, producer kafka.Client) Booking {
	return &serviceImpl{
		repo:     repo,
		resRepo:  resRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		producer: producer,
		policy:   schedule.PolicyFromConfig(cfg),
	}
}

// Create registers a new pending booking. The conflict check against the
// classified grid is advisory: between this read and the insert another client
// may slip in a conflicting booking, and the store accepts both. The grid
// surfaces such collisions on the next fetch.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user)
	if err != nil {
		return res, err
	}

	resource, err := s.resRepo.Get(ctx, shared.FilterByID(booking.ResourceID, resourceModel.FieldID, resourceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource for booking")

		return res, fmt.Errorf("failed to get resource for booking: %w", err)
	}

	if resource.ID == constant.Empty || !resource.Active {
		return res, failure.BadRequestFromString("resource does not exist or is inactive") //nolint:wrapcheck
	}

	from, to := booking.CoveredHours()

	if err = s.policy.ValidateStart(from); err != nil {
		return res, err
	}

	grid, err := s.classifiedGrid(ctx, booking.ResourceID, req.BookingDate)
	if err != nil {
		return res, err
	}

	if err = s.policy.Conflicts(grid, from, to); err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Accept confirms a pending booking.
func (s *serviceImpl) Accept(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Accept")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.transition(ctx, id, model.StatusAccepted, nil)
	if err != nil {
		return err
	}

	s.publish(ctx, booking, event.OutcomeAccepted, constant.Empty)

	return nil
}

// Reject declines a pending booking with a reason the member gets to see.
func (s *serviceImpl) Reject(ctx context.Context, id string, req dto.RejectBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.transition(ctx, id, model.StatusRejected, map[string]any{
		model.FieldRejectionReason: req.Reason,
	})
	if err != nil {
		return err
	}

	s.publish(ctx, booking, event.OutcomeRejected, req.Reason)

	return nil
}

// Cancel re-opens an accepted booking back to pending, freeing its slots on
// the grid. This is the one deliberate backward edge in the state machine.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.transition(ctx, id, model.StatusPending, nil)
	if err != nil {
		return err
	}

	s.publish(ctx, booking, event.OutcomeCancelled, constant.Empty)

	return nil
}

// Sweep marks every accepted booking whose end time has passed as done and
// returns how many were closed. It is at-least-once: a concurrent admin edit
// simply wins or loses by last write, and re-marking an already done booking
// is a no-op because done bookings are never fetched here.
func (s *serviceImpl) Sweep(ctx context.Context, now time.Time) (swept int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Sweep")
	defer scope.End()
	defer scope.TraceIfError(err)

	acceptedFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusAccepted,
				Table:    model.TableName,
			},
		},
	}

	accepted, err := s.repo.GetAll(ctx, gDto.QueryParams{}, acceptedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch accepted bookings for sweep")

		return 0, fmt.Errorf("failed to fetch accepted bookings for sweep: %w", err)
	}

	for _, booking := range accepted {
		if !booking.Elapsed(now) {
			continue
		}

		fields := map[string]any{
			model.FieldStatus:        model.StatusDone,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: "sweeper",
		}

		if err := s.repo.Update(ctx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to mark booking done")

			continue
		}

		s.publish(ctx, booking, event.OutcomeDone, constant.Empty)

		swept++
	}

	if swept > 0 {
		go func() {
			c := context.WithoutCancel(ctx)

			shared.InvalidateCaches(c, s.cache, cacheGetBooking)
			shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
			shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		}()
	}

	return swept, nil
}

// transition loads the booking, enforces the state machine, and writes the new
// status together with any extra fields.
func (s *serviceImpl) transition(ctx context.Context, id, to string, extra map[string]any) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if !model.CanTransition(booking.Status, to) {
		return booking, failure.Conflict(fmt.Sprintf("booking cannot move from %s to %s", booking.Status, to)) //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStatus:        to,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	for key, value := range extra {
		fields[key] = value
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return booking, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = to

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return booking, nil
}

// publish sends the booking event to the notification topic. Best effort: a
// publish failure is logged as "status changed but notification failed" and
// never undoes the status write.
func (s *serviceImpl) publish(ctx context.Context, booking model.Booking, outcome event.Outcome, reason string) {
	payload := event.FromModel(booking, outcome, reason, timezone.Now())

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: booking.ID, Value: payload}

		if err := s.producer.SendMessages(c, s.cfg.Kafka.Topic.BookingEvents, message); err != nil {
			log.Warn().Err(err).Str("booking_id", booking.ID).Msg("status changed but notification failed")
		}
	}()
}

// classifiedGrid builds the availability grid for one resource and date from
// the bookings that still block slots.
func (s *serviceImpl) classifiedGrid(ctx context.Context, resourceID, date string) (schedule.Grid, error) {
	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, repository.ActiveForResourceDate(resourceID, date))
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch bookings for conflict check")

		return nil, fmt.Errorf("failed to fetch bookings for conflict check: %w", err)
	}

	return s.policy.Classify(s.policy.BuildGrid(), bookings), nil
}

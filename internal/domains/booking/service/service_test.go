package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inspirehub/config"
	kafkaMocks "inspirehub/infras/kafka/mocks"
	"inspirehub/infras/otel/mocks"
	bookingMocks "inspirehub/internal/domains/booking/mocks"
	"inspirehub/internal/domains/booking/model"
	"inspirehub/internal/domains/booking/model/dto"
	"inspirehub/internal/domains/booking/service"
	resourceMocks "inspirehub/internal/domains/resource/mocks"
	resourceModel "inspirehub/internal/domains/resource/model"
	"inspirehub/shared/cache"
	cacheMocks "inspirehub/shared/cache/mocks"
	"inspirehub/shared/constant"
	gDto "inspirehub/shared/dto"
	"inspirehub/shared/failure"
	gModel "inspirehub/shared/model"
)

type fixture struct {
	repo     *bookingMocks.MockBooking
	resRepo  *resourceMocks.MockResource
	cache    *cacheMocks.MockRedisCache
	producer *kafkaMocks.MockClient
	service  service.Booking
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockResRepo := resourceMocks.NewMockResource(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockProducer := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topic.BookingEvents = "booking-events"

	// Cache writes and event publishes happen on detached goroutines; the
	// assertions here are about the synchronous path.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockProducer.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return fixture{
		repo:     mockRepo,
		resRepo:  mockResRepo,
		cache:    mockCache,
		producer: mockProducer,
		service:  service.New(mockRepo, mockResRepo, cfg, mockCache, mocks.NewOtel(), mockProducer),
	}
}

func activeResource() resourceModel.Resource {
	return resourceModel.Resource{
		ID:         "res-1",
		Name:       "Focus Room",
		Kind:       resourceModel.KindMeetingRoom,
		HourlyRate: 1000,
		Active:     true,
	}
}

func storedBooking(status string) model.Booking {
	return model.Booking{
		ID:          "booking-1",
		ResourceID:  "res-1",
		BookingDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(0, 1, 1, 11, 0, 0, 0, time.UTC),
		Status:      status,
		Metadata:    gModel.Metadata{CreatedBy: "member-1"},
	}
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		ResourceID:  "res-1",
		BookingDate: "2026-03-02",
		StartTime:   "09:00",
		EndTime:     "11:00",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(f fixture)
		wantErr   string
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func(f fixture) {
				f.resRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeResource(), nil)
				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "malformed booking date",
			req: dto.CreateBookingRequest{
				ResourceID:  "res-1",
				BookingDate: "02-03-2026",
				StartTime:   "09:00",
				EndTime:     "11:00",
			},
			setupMock: func(f fixture) {},
			wantErr:   "booking_date must be formatted YYYY-MM-DD",
		},
		{
			name: "unknown resource",
			req:  validReq,
			setupMock: func(f fixture) {
				f.resRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(resourceModel.Resource{}, nil)
			},
			wantErr: "resource does not exist or is inactive",
		},
		{
			name: "inactive resource",
			req:  validReq,
			setupMock: func(f fixture) {
				inactive := activeResource()
				inactive.Active = false

				f.resRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr: "resource does not exist or is inactive",
		},
		{
			name: "conflicting booking blocks creation",
			req:  validReq,
			setupMock: func(f fixture) {
				f.resRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeResource(), nil)
				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{storedBooking(model.StatusAccepted)}, nil)
			},
			wantErr: "hour 09:00 is already taken",
		},
		{
			name: "range past the hard close",
			req: dto.CreateBookingRequest{
				ResourceID:  "res-1",
				BookingDate: "2026-03-02",
				StartTime:   "19:00",
				EndTime:     "21:00",
			},
			setupMock: func(f fixture) {
				f.resRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeResource(), nil)
				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)
			},
			wantErr: "cannot extend beyond 8:00 PM",
		},
		{
			name: "range before opening",
			req: dto.CreateBookingRequest{
				ResourceID:  "res-1",
				BookingDate: "2026-03-02",
				StartTime:   "05:00",
				EndTime:     "06:00",
			},
			setupMock: func(f fixture) {
				f.resRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeResource(), nil)
			},
			wantErr: "start time must be between 7:00 AM and 7:00 PM",
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func(f fixture) {
				f.resRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeResource(), nil)
				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: "failed to create booking: db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "member-1")

			res, err := f.service.Create(ctx, tt.req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusPending, res.Status)
			assert.Equal(t, "member-1", res.CreatedBy)
		})
	}
}

func TestBookingService_Accept(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   string
	}{
		{
			name: "pending booking is accepted",
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil).
					AnyTimes()
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(model.StatusPending), nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusAccepted, fields[model.FieldStatus])
						assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
		{
			name: "booking not found",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: "booking not found",
		},
		{
			name: "already accepted booking cannot be accepted again",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(model.StatusAccepted), nil)
			},
			wantErr: "booking cannot move from accepted to accepted",
		},
		{
			name: "rejected booking is terminal",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(model.StatusRejected), nil)
			},
			wantErr: "booking cannot move from rejected to accepted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

			err := f.service.Accept(ctx, "booking-1")

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Reject(t *testing.T) {
	t.Run("stores the rejection reason", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(model.StatusPending), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusRejected, fields[model.FieldStatus])
				assert.Equal(t, "double booked", fields[model.FieldRejectionReason])

				return nil
			})

		err := f.service.Reject(context.Background(), "booking-1", dto.RejectBookingRequest{Reason: "double booked"})

		assert.NoError(t, err)
	})

	t.Run("accepted booking cannot be rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(model.StatusAccepted), nil)

		err := f.service.Reject(context.Background(), "booking-1", dto.RejectBookingRequest{Reason: "too late"})

		assert.EqualError(t, err, "booking cannot move from accepted to rejected")
		assert.True(t, failure.IsConflict(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("accepted booking re-opens to pending", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(model.StatusAccepted), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusPending, fields[model.FieldStatus])

				return nil
			})

		err := f.service.Cancel(context.Background(), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("pending booking cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(model.StatusPending), nil)

		err := f.service.Cancel(context.Background(), "booking-1")

		assert.EqualError(t, err, "booking cannot move from pending to pending")
	})
}

func TestBookingService_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	elapsed := storedBooking(model.StatusAccepted)

	running := storedBooking(model.StatusAccepted)
	running.ID = "booking-2"
	running.EndTime = time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC)

	t.Run("marks only elapsed bookings done", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{elapsed, running}, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusDone, fields[model.FieldStatus])
				assert.Equal(t, "sweeper", fields[constant.FieldModifiedBy])

				return nil
			})

		swept, err := f.service.Sweep(context.Background(), now)

		assert.NoError(t, err)
		assert.Equal(t, 1, swept)
	})

	t.Run("nothing to sweep", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{running}, nil)

		swept, err := f.service.Sweep(context.Background(), now)

		assert.NoError(t, err)
		assert.Equal(t, 0, swept)
	})

	t.Run("one failed update does not stop the sweep", func(t *testing.T) {
		f := newFixture(t)

		second := storedBooking(model.StatusAccepted)
		second.ID = "booking-3"

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{elapsed, second}, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		swept, err := f.service.Sweep(context.Background(), now)

		assert.NoError(t, err)
		assert.Equal(t, 1, swept)
	})

	t.Run("fetch failure aborts the sweep", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		swept, err := f.service.Sweep(context.Background(), now)

		assert.Error(t, err)
		assert.Equal(t, 0, swept)
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("returns the stored booking on cache miss", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(model.StatusPending), nil)

		res, err := f.service.Get(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
		assert.Equal(t, "09:00", res.StartTime)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := f.service.Get(context.Background(), "missing")

		assert.EqualError(t, err, "booking not found")
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inspirehub/config"
	"inspirehub/infras/otel/mocks"
	bookingMocks "inspirehub/internal/domains/booking/mocks"
	bookingModel "inspirehub/internal/domains/booking/model"
	resourceMocks "inspirehub/internal/domains/resource/mocks"
	resourceModel "inspirehub/internal/domains/resource/model"
	"inspirehub/internal/domains/schedule"
	"inspirehub/internal/domains/schedule/dto"
	"inspirehub/internal/domains/schedule/service"
	"inspirehub/shared/failure"
)

func newService(t *testing.T) (service.Schedule, *bookingMocks.MockBooking, *resourceMocks.MockResource) {
	ctrl := gomock.NewController(t)

	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockResources := resourceMocks.NewMockResource(ctrl)

	return service.New(mockBookings, mockResources, &config.Config{}, mocks.NewOtel()), mockBookings, mockResources
}

func meetingRoom() resourceModel.Resource {
	return resourceModel.Resource{
		ID:         "res-1",
		Name:       "Focus Room",
		Kind:       resourceModel.KindMeetingRoom,
		HourlyRate: 1000,
		Active:     true,
	}
}

func acceptedBooking(startHour, endHour int) bookingModel.Booking {
	return bookingModel.Booking{
		ID:         "booking-1",
		ResourceID: "res-1",
		Status:     bookingModel.StatusAccepted,
		StartTime:  time.Date(0, 1, 1, startHour, 0, 0, 0, time.UTC),
		EndTime:    time.Date(0, 1, 1, endHour, 0, 0, 0, time.UTC),
	}
}

func TestScheduleService_Availability(t *testing.T) {
	t.Run("returns the full grid with bookings overlaid", func(t *testing.T) {
		svc, mockBookings, mockResources := newService(t)

		mockResources.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(meetingRoom(), nil)
		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{acceptedBooking(9, 11)}, nil)

		res, err := svc.Availability(context.Background(), "res-1", "2026-03-02")

		assert.NoError(t, err)
		assert.Equal(t, "res-1", res.ResourceID)
		assert.Equal(t, "2026-03-02", res.Date)
		assert.Len(t, res.Slots, 13)
		assert.Equal(t, "07:00", res.Slots[0].Hour)
		assert.Equal(t, string(schedule.SlotReserved), res.Slots[2].Status)
		assert.Equal(t, string(schedule.SlotReserved), res.Slots[3].Status)
		assert.Equal(t, string(schedule.SlotAvailable), res.Slots[4].Status)
		assert.Equal(t, string(schedule.SlotAfterHours), res.Slots[10].Status)
	})

	t.Run("malformed date", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Availability(context.Background(), "res-1", "03/02/2026")

		assert.EqualError(t, err, "date must be formatted YYYY-MM-DD")
	})

	t.Run("unknown resource", func(t *testing.T) {
		svc, _, mockResources := newService(t)

		mockResources.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(resourceModel.Resource{}, nil)

		_, err := svc.Availability(context.Background(), "missing", "2026-03-02")

		assert.EqualError(t, err, "resource not found")
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestScheduleService_Quote(t *testing.T) {
	validReq := dto.QuoteRequest{
		ResourceID:    "res-1",
		BookingDate:   "2026-03-02",
		StartHour:     16,
		DurationHours: 3,
	}

	t.Run("prices a span straddling the surcharge boundary", func(t *testing.T) {
		svc, mockBookings, mockResources := newService(t)

		mockResources.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(meetingRoom(), nil)
		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{}, nil)

		res, err := svc.Quote(context.Background(), validReq)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.RegularHours)
		assert.Equal(t, 2, res.AfterHours)
		assert.Equal(t, int64(1000), res.RegularAmount)
		assert.Equal(t, int64(2400), res.AfterHoursAmount)
		assert.Equal(t, int64(3400), res.Total)
	})

	t.Run("quote over a reserved hour is rejected", func(t *testing.T) {
		svc, mockBookings, mockResources := newService(t)

		mockResources.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(meetingRoom(), nil)
		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{acceptedBooking(16, 17)}, nil)

		_, err := svc.Quote(context.Background(), validReq)

		assert.EqualError(t, err, "hour 16:00 is already taken")
	})

	t.Run("quote past the hard close is rejected", func(t *testing.T) {
		svc, mockBookings, mockResources := newService(t)

		mockResources.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(meetingRoom(), nil)
		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{}, nil)

		req := validReq
		req.StartHour = 19
		req.DurationHours = 2

		_, err := svc.Quote(context.Background(), req)

		assert.EqualError(t, err, "cannot extend beyond 8:00 PM")
	})

	t.Run("booking fetch failure", func(t *testing.T) {
		svc, mockBookings, mockResources := newService(t)

		mockResources.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(meetingRoom(), nil)
		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.Quote(context.Background(), validReq)

		assert.Error(t, err)
	})
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"inspirehub/internal/domains/booking/model"
	"inspirehub/shared"
	"inspirehub/shared/constant"
	gDto "inspirehub/shared/dto"
	"inspirehub/shared/failure"
	gModel "inspirehub/shared/model"
	"inspirehub/shared/timezone"
)

type CreateBookingRequest struct {
	ResourceID  string   `json:"resource_id"  validate:"required"`
	BookingDate string   `json:"booking_date" validate:"required"`
	StartTime   string   `json:"start_time"   validate:"required"`
	EndTime     string   `json:"end_time"     validate:"required"`
	Guests      []string `json:"guests"       validate:"omitempty,dive,required,max=100"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	bookingDate, err := timezone.Parse(constant.CalendarFormat, c.BookingDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("booking_date must be formatted YYYY-MM-DD") //nolint:wrapcheck
	}

	startTime, err := time.Parse(constant.ClockFormat, c.StartTime)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("start_time must be formatted HH:MM") //nolint:wrapcheck
	}

	endTime, err := time.Parse(constant.ClockFormat, c.EndTime)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("end_time must be formatted HH:MM") //nolint:wrapcheck
	}

	if !startTime.Before(endTime) {
		return model.Booking{}, failure.BadRequestFromString("start_time must be before end_time") //nolint:wrapcheck
	}

	return model.Booking{
		ID:          uuid.NewString(),
		ResourceID:  c.ResourceID,
		BookingDate: bookingDate,
		StartTime:   startTime,
		EndTime:     endTime,
		Guests:      c.Guests,
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type BookingResponse struct {
	ID              string   `json:"id"`
	ResourceID      string   `json:"resource_id"`
	BookingDate     string   `json:"booking_date"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	Guests          []string `json:"guests,omitempty"`
	Status          string   `json:"status"`
	RejectionReason string   `json:"rejection_reason,omitempty"`
	RequestedAt     string   `json:"requested_at"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ResourceID = model.ResourceID
	r.BookingDate = model.BookingDate.Format(constant.CalendarFormat)
	r.StartTime = model.StartTime.Format(constant.ClockFormat)
	r.EndTime = model.EndTime.Format(constant.ClockFormat)
	r.Guests = model.Guests
	r.Status = model.Status
	r.RequestedAt = timezone.Format(model.CreatedAt, constant.DateFormat)

	if model.RejectionReason != nil {
		r.RejectionReason = *model.RejectionReason
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

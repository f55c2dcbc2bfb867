package event

import (
	"time"

	"inspirehub/internal/domains/booking/model"
	"inspirehub/shared/constant"
)

// Outcome is the lifecycle decision a booking event announces.
type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeRejected  Outcome = "rejected"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeDone      Outcome = "done"
)

// BookingEvent is the payload published to the booking events topic whenever an
// admin decision lands. Delivery is fire-and-forget: a failed publish never
// rolls back the status change.
type BookingEvent struct {
	BookingID   string  `json:"booking_id"`
	ResourceID  string  `json:"resource_id"`
	MemberID    string  `json:"member_id"`
	BookingDate string  `json:"booking_date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Outcome     Outcome `json:"outcome"`
	Reason      string  `json:"reason,omitempty"`
	OccurredAt  string  `json:"occurred_at"`
}

// FromModel builds the event for a booking that just received the given
// outcome.
func FromModel(booking model.Booking, outcome Outcome, reason string, at time.Time) BookingEvent {
	return BookingEvent{
		BookingID:   booking.ID,
		ResourceID:  booking.ResourceID,
		MemberID:    booking.CreatedBy,
		BookingDate: booking.BookingDate.Format(constant.CalendarFormat),
		StartTime:   booking.StartTime.Format(constant.ClockFormat),
		EndTime:     booking.EndTime.Format(constant.ClockFormat),
		Outcome:     outcome,
		Reason:      reason,
		OccurredAt:  at.Format(constant.DateFormat),
	}
}

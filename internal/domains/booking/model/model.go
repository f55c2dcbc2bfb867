package model

import (
	"time"

	"github.com/lib/pq"

	"inspirehub/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldResourceID      = "resource_id"
	FieldBookingDate     = "booking_date"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldGuests          = "guests"
	FieldStatus          = "status"
	FieldRejectionReason = "rejection_reason"
	FieldCreatedBy       = "created_by"
)

// Booking lifecycle. A booking enters as pending, an admin accepts or rejects
// it, and the sweeper marks accepted bookings done once their end time passes.
// Cancel re-opens an accepted booking back to pending; done and rejected are
// terminal.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
	StatusDone     = "done"
)

// ActiveStatuses are the statuses that block conflicting selections on the
// availability grid.
var ActiveStatuses = []string{StatusPending, StatusAccepted}

// transitions is the allowed state machine. accepted -> pending is the
// deliberate extra cancel edge that re-opens a slot.
var transitions = map[string][]string{
	StatusPending:  {StatusAccepted, StatusRejected},
	StatusAccepted: {StatusDone, StatusPending},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

type Booking struct {
	ID              string         `db:"id"`
	ResourceID      string         `db:"resource_id"`
	BookingDate     time.Time      `db:"booking_date"`
	StartTime       time.Time      `db:"start_time"`
	EndTime         time.Time      `db:"end_time"`
	Guests          pq.StringArray `db:"guests"`
	Status          string         `db:"status"`
	RejectionReason *string        `db:"rejection_reason"`
	model.Metadata
}

// CoveredHours expands the booking's [start, end) range into the whole hours it
// occupies on the hourly grid; a partial final hour counts as covered.
func (b Booking) CoveredHours() (from, to int) {
	from = b.StartTime.Hour()
	to = b.EndTime.Hour()

	if b.EndTime.Minute() > 0 {
		to++
	}

	return from, to
}

// EndsAt combines the booking date and end clock time into one instant in the
// given location.
func (b Booking) EndsAt(loc *time.Location) time.Time {
	return time.Date(
		b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
		b.EndTime.Hour(), b.EndTime.Minute(), 0, 0,
		loc,
	)
}

// Elapsed reports whether the booking's end time has passed at the given
// minute-truncated instant.
func (b Booking) Elapsed(now time.Time) bool {
	return !b.EndsAt(now.Location()).After(now.Truncate(time.Minute))
}

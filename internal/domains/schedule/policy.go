package schedule

import (
	"inspirehub/config"
	bookingModel "inspirehub/internal/domains/booking/model"
)

// SlotStatus is the derived state of one hour-wide cell in a resource's daily grid.
type SlotStatus string

const (
	SlotAvailable  SlotStatus = "available"
	SlotSelected   SlotStatus = "selected"
	SlotTentative  SlotStatus = "tentative"
	SlotReserved   SlotStatus = "reserved"
	SlotAfterHours SlotStatus = "after-hours"
)

// Slot is one bookable hour of a resource's day. It is a pure projection of the
// booking set for that resource and date; it is never persisted.
type Slot struct {
	Hour   int
	Status SlotStatus
}

// Grid is the ordered daily sequence of slots for a single resource and date.
type Grid []Slot

// Policy carries the operating-hour rules applied to every bookable resource.
// OpenHour..CloseHour (inclusive) is the visible grid; HardCloseHour is the
// absolute end of any selection; hours at or past AfterHoursStart carry the
// surcharge.
type Policy struct {
	OpenHour         int
	CloseHour        int
	HardCloseHour    int
	AfterHoursStart  int
	SurchargePercent int64
}

// DefaultPolicy returns the standard coworking operating hours:
// 07:00-19:00 grid, hard close 20:00, after-hours surcharge from 17:00.
func DefaultPolicy() Policy {
	return Policy{
		OpenHour:         7,
		CloseHour:        19,
		HardCloseHour:    20,
		AfterHoursStart:  17,
		SurchargePercent: 20,
	}
}

// PolicyFromConfig builds the operating-hour policy from service configuration,
// falling back to the defaults for unset values.
func PolicyFromConfig(cfg *config.Config) Policy {
	policy := DefaultPolicy()

	if cfg.Booking.OpenHour > 0 {
		policy.OpenHour = cfg.Booking.OpenHour
	}

	if cfg.Booking.CloseHour > 0 {
		policy.CloseHour = cfg.Booking.CloseHour
	}

	if cfg.Booking.HardCloseHour > 0 {
		policy.HardCloseHour = cfg.Booking.HardCloseHour
	}

	if cfg.Booking.AfterHoursStart > 0 {
		policy.AfterHoursStart = cfg.Booking.AfterHoursStart
	}

	if cfg.Booking.SurchargePercent > 0 {
		policy.SurchargePercent = cfg.Booking.SurchargePercent
	}

	return policy
}

// baseline is the classified-free status of an hour: after-hours past the
// surcharge boundary, available otherwise.
func (p Policy) baseline(hour int) SlotStatus {
	if hour >= p.AfterHoursStart {
		return SlotAfterHours
	}

	return SlotAvailable
}

// BuildGrid produces the fixed daily grid of bookable hour slots, every hour
// defaulting to its baseline status.
func (p Policy) BuildGrid() Grid {
	grid := make(Grid, 0, p.CloseHour-p.OpenHour+1)

	for hour := p.OpenHour; hour <= p.CloseHour; hour++ {
		grid = append(grid, Slot{Hour: hour, Status: p.baseline(hour)})
	}

	return grid
}

// Classify overlays existing bookings onto a copy of the grid. Hours covered by
// an accepted booking become reserved, hours covered by a pending booking become
// tentative; rejected and done bookings leave no trace. Hours outside the grid
// bounds are dropped. Reserved takes precedence over tentative when bookings
// overlap.
func (p Policy) Classify(grid Grid, bookings []bookingModel.Booking) Grid {
	classified := make(Grid, len(grid))
	copy(classified, grid)

	for _, booking := range bookings {
		var status SlotStatus

		switch booking.Status {
		case bookingModel.StatusAccepted:
			status = SlotReserved
		case bookingModel.StatusPending:
			status = SlotTentative
		default:
			continue
		}

		from, to := booking.CoveredHours()

		for hour := from; hour < to; hour++ {
			idx := hour - p.OpenHour
			if idx < 0 || idx >= len(classified) {
				continue
			}

			if classified[idx].Status == SlotReserved {
				continue
			}

			classified[idx].Status = status
		}
	}

	return classified
}

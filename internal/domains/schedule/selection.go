package schedule

import (
	"fmt"

	"inspirehub/shared/failure"
)

// Conflicts reports why the hour range [startHour, endHour) cannot be taken on
// the classified grid: it either runs past the hard close or crosses an hour
// already reserved or tentatively held.
func (p Policy) Conflicts(grid Grid, startHour, endHour int) error {
	if endHour > p.HardCloseHour {
		return failure.Conflict(fmt.Sprintf("cannot extend beyond %s", clockLabel(p.HardCloseHour)))
	}

	for _, slot := range grid {
		if slot.Hour < startHour || slot.Hour >= endHour {
			continue
		}

		if slot.Status == SlotReserved || slot.Status == SlotTentative {
			return failure.Conflict(fmt.Sprintf("hour %02d:00 is already taken", slot.Hour))
		}
	}

	return nil
}

// ValidateStart checks that a range begins within operating hours.
func (p Policy) ValidateStart(startHour int) error {
	if startHour < p.OpenHour || startHour > p.CloseHour {
		return failure.BadRequestFromString(fmt.Sprintf("start time must be between %s and %s", clockLabel(p.OpenHour), clockLabel(p.CloseHour)))
	}

	return nil
}

// Select validates a requested range against the classified grid and returns a
// new grid with the covered hours marked selected. Any hour selected on the
// input grid is first reverted to its classified baseline, so re-selection
// always recomputes from the classified state and never accumulates residue
// from a previous choice.
func (p Policy) Select(grid Grid, startHour, durationHours int) (Grid, error) {
	if durationHours < 1 {
		return nil, failure.BadRequestFromString("duration must be at least one hour")
	}

	if err := p.ValidateStart(startHour); err != nil {
		return nil, err
	}

	endHour := startHour + durationHours

	if err := p.Conflicts(grid, startHour, endHour); err != nil {
		return nil, err
	}

	selected := make(Grid, len(grid))
	copy(selected, grid)

	for idx, slot := range selected {
		// A slot can only have been selected over an available or after-hours
		// baseline, so the revert is exact.
		if slot.Status == SlotSelected {
			selected[idx].Status = p.baseline(slot.Hour)
		}

		if slot.Hour >= startHour && slot.Hour < endHour {
			selected[idx].Status = SlotSelected
		}
	}

	return selected, nil
}

// clockLabel renders an hour as a 12-hour wall-clock label for user-facing
// conflict messages, e.g. 20 -> "8:00 PM".
func clockLabel(hour int) string {
	suffix := "AM"
	display := hour

	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		display = hour - 12
		suffix = "PM"
	}

	return fmt.Sprintf("%d:00 %s", display, suffix)
}

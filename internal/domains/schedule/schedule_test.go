package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "inspirehub/internal/domains/booking/model"
	"inspirehub/internal/domains/schedule"
)

func booking(status string, startHour, endHour, endMinute int) bookingModel.Booking {
	return bookingModel.Booking{
		Status:    status,
		StartTime: time.Date(2026, 3, 2, startHour, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, endHour, endMinute, 0, 0, time.UTC),
	}
}

func statusAt(t *testing.T, grid schedule.Grid, hour int) schedule.SlotStatus {
	t.Helper()

	for _, slot := range grid {
		if slot.Hour == hour {
			return slot.Status
		}
	}

	t.Fatalf("hour %d not on grid", hour)

	return ""
}

func TestBuildGrid(t *testing.T) {
	policy := schedule.DefaultPolicy()
	grid := policy.BuildGrid()

	assert.Len(t, grid, 13)
	assert.Equal(t, 7, grid[0].Hour)
	assert.Equal(t, 19, grid[len(grid)-1].Hour)

	for _, slot := range grid {
		if slot.Hour >= 17 {
			assert.Equal(t, schedule.SlotAfterHours, slot.Status, "hour %d", slot.Hour)
		} else {
			assert.Equal(t, schedule.SlotAvailable, slot.Status, "hour %d", slot.Hour)
		}
	}
}

func TestClassify(t *testing.T) {
	policy := schedule.DefaultPolicy()

	tests := []struct {
		name     string
		bookings []bookingModel.Booking
		hour     int
		want     schedule.SlotStatus
	}{
		{
			name:     "accepted booking reserves its hours",
			bookings: []bookingModel.Booking{booking(bookingModel.StatusAccepted, 9, 11, 0)},
			hour:     10,
			want:     schedule.SlotReserved,
		},
		{
			name:     "pending booking holds its hours tentatively",
			bookings: []bookingModel.Booking{booking(bookingModel.StatusPending, 9, 11, 0)},
			hour:     9,
			want:     schedule.SlotTentative,
		},
		{
			name:     "rejected booking leaves no trace",
			bookings: []bookingModel.Booking{booking(bookingModel.StatusRejected, 9, 11, 0)},
			hour:     9,
			want:     schedule.SlotAvailable,
		},
		{
			name:     "done booking leaves no trace",
			bookings: []bookingModel.Booking{booking(bookingModel.StatusDone, 9, 11, 0)},
			hour:     10,
			want:     schedule.SlotAvailable,
		},
		{
			name: "reserved wins over tentative on overlap",
			bookings: []bookingModel.Booking{
				booking(bookingModel.StatusAccepted, 9, 11, 0),
				booking(bookingModel.StatusPending, 10, 12, 0),
			},
			hour: 10,
			want: schedule.SlotReserved,
		},
		{
			name: "reserved wins regardless of booking order",
			bookings: []bookingModel.Booking{
				booking(bookingModel.StatusPending, 10, 12, 0),
				booking(bookingModel.StatusAccepted, 9, 11, 0),
			},
			hour: 10,
			want: schedule.SlotReserved,
		},
		{
			name:     "partial final hour counts as covered",
			bookings: []bookingModel.Booking{booking(bookingModel.StatusAccepted, 9, 10, 30)},
			hour:     10,
			want:     schedule.SlotReserved,
		},
		{
			name:     "hour past the covered range stays free",
			bookings: []bookingModel.Booking{booking(bookingModel.StatusAccepted, 9, 11, 0)},
			hour:     11,
			want:     schedule.SlotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := policy.Classify(policy.BuildGrid(), tt.bookings)

			assert.Equal(t, tt.want, statusAt(t, grid, tt.hour))
		})
	}
}

func TestClassifyDoesNotMutateInput(t *testing.T) {
	policy := schedule.DefaultPolicy()
	grid := policy.BuildGrid()

	policy.Classify(grid, []bookingModel.Booking{booking(bookingModel.StatusAccepted, 9, 11, 0)})

	assert.Equal(t, schedule.SlotAvailable, statusAt(t, grid, 9))
}

func TestClassifyDropsHoursOutsideGrid(t *testing.T) {
	policy := schedule.DefaultPolicy()

	grid := policy.Classify(policy.BuildGrid(), []bookingModel.Booking{
		booking(bookingModel.StatusAccepted, 5, 8, 0),
	})

	assert.Equal(t, schedule.SlotReserved, statusAt(t, grid, 7))
	assert.Len(t, grid, 13)
}

func TestConflicts(t *testing.T) {
	policy := schedule.DefaultPolicy()

	tests := []struct {
		name      string
		bookings  []bookingModel.Booking
		startHour int
		endHour   int
		wantErr   string
	}{
		{
			name:      "free range passes",
			startHour: 9,
			endHour:   11,
		},
		{
			name:      "reserved hour blocks the range",
			bookings:  []bookingModel.Booking{booking(bookingModel.StatusAccepted, 10, 12, 0)},
			startHour: 9,
			endHour:   11,
			wantErr:   "hour 10:00 is already taken",
		},
		{
			name:      "tentative hour blocks the range",
			bookings:  []bookingModel.Booking{booking(bookingModel.StatusPending, 9, 10, 0)},
			startHour: 9,
			endHour:   10,
			wantErr:   "hour 09:00 is already taken",
		},
		{
			name:      "last slot up to the hard close passes",
			startHour: 19,
			endHour:   20,
		},
		{
			name:      "range past the hard close is rejected",
			startHour: 19,
			endHour:   21,
			wantErr:   "cannot extend beyond 8:00 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := policy.Classify(policy.BuildGrid(), tt.bookings)

			err := policy.Conflicts(grid, tt.startHour, tt.endHour)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	policy := schedule.DefaultPolicy()

	t.Run("marks the requested hours selected", func(t *testing.T) {
		grid, err := policy.Select(policy.BuildGrid(), 9, 2)

		assert.NoError(t, err)
		assert.Equal(t, schedule.SlotSelected, statusAt(t, grid, 9))
		assert.Equal(t, schedule.SlotSelected, statusAt(t, grid, 10))
		assert.Equal(t, schedule.SlotAvailable, statusAt(t, grid, 11))
	})

	t.Run("reselection reverts the previous choice", func(t *testing.T) {
		first, err := policy.Select(policy.BuildGrid(), 9, 2)
		assert.NoError(t, err)

		second, err := policy.Select(first, 17, 1)
		assert.NoError(t, err)

		assert.Equal(t, schedule.SlotAvailable, statusAt(t, second, 9))
		assert.Equal(t, schedule.SlotAvailable, statusAt(t, second, 10))
		assert.Equal(t, schedule.SlotSelected, statusAt(t, second, 17))
	})

	t.Run("reverted after-hours slot regains its surcharge status", func(t *testing.T) {
		first, err := policy.Select(policy.BuildGrid(), 18, 1)
		assert.NoError(t, err)

		second, err := policy.Select(first, 9, 1)
		assert.NoError(t, err)

		assert.Equal(t, schedule.SlotAfterHours, statusAt(t, second, 18))
	})

	t.Run("rejects zero duration", func(t *testing.T) {
		_, err := policy.Select(policy.BuildGrid(), 9, 0)

		assert.Error(t, err)
	})

	t.Run("rejects start before opening", func(t *testing.T) {
		_, err := policy.Select(policy.BuildGrid(), 6, 1)

		assert.EqualError(t, err, "start time must be between 7:00 AM and 7:00 PM")
	})

	t.Run("rejects start after the last grid hour", func(t *testing.T) {
		_, err := policy.Select(policy.BuildGrid(), 20, 1)

		assert.Error(t, err)
	})

	t.Run("accepts the first and last operating hours", func(t *testing.T) {
		assert.NoError(t, policy.ValidateStart(7))
		assert.NoError(t, policy.ValidateStart(19))
		assert.Error(t, policy.ValidateStart(6))
		assert.Error(t, policy.ValidateStart(20))
	})

	t.Run("rejects selection over a reserved hour", func(t *testing.T) {
		grid := policy.Classify(policy.BuildGrid(), []bookingModel.Booking{
			booking(bookingModel.StatusAccepted, 10, 11, 0),
		})

		_, err := policy.Select(grid, 9, 2)

		assert.Error(t, err)
	})
}

func TestCost(t *testing.T) {
	policy := schedule.DefaultPolicy()

	tests := []struct {
		name          string
		rate          int64
		startHour     int
		durationHours int
		want          schedule.Breakdown
	}{
		{
			name:          "regular hours only",
			rate:          1000,
			startHour:     9,
			durationHours: 2,
			want: schedule.Breakdown{
				RegularHours:  2,
				RegularAmount: 2000,
				Total:         2000,
			},
		},
		{
			name:          "after hours only",
			rate:          1000,
			startHour:     17,
			durationHours: 2,
			want: schedule.Breakdown{
				AfterHours:       2,
				AfterHoursAmount: 2400,
				Total:            2400,
			},
		},
		{
			name:          "span straddling the boundary is split",
			rate:          1000,
			startHour:     16,
			durationHours: 3,
			want: schedule.Breakdown{
				RegularHours:     1,
				AfterHours:       2,
				RegularAmount:    1000,
				AfterHoursAmount: 2400,
				Total:            3400,
			},
		},
		{
			name:          "surcharge amount is floored",
			rate:          999,
			startHour:     17,
			durationHours: 1,
			want: schedule.Breakdown{
				AfterHours:       1,
				AfterHoursAmount: 1198,
				Total:            1198,
			},
		},
		{
			name:          "zero duration prices nothing",
			rate:          1000,
			startHour:     9,
			durationHours: 0,
			want:          schedule.Breakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Cost(tt.rate, tt.startHour, tt.durationHours)

			assert.Equal(t, tt.want, got)
		})
	}
}

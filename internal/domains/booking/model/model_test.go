package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inspirehub/internal/domains/booking/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "pending can be accepted", from: model.StatusPending, to: model.StatusAccepted, want: true},
		{name: "pending can be rejected", from: model.StatusPending, to: model.StatusRejected, want: true},
		{name: "pending cannot jump to done", from: model.StatusPending, to: model.StatusDone, want: false},
		{name: "accepted can complete", from: model.StatusAccepted, to: model.StatusDone, want: true},
		{name: "accepted can be re-opened", from: model.StatusAccepted, to: model.StatusPending, want: true},
		{name: "accepted cannot be rejected", from: model.StatusAccepted, to: model.StatusRejected, want: false},
		{name: "rejected is terminal", from: model.StatusRejected, to: model.StatusPending, want: false},
		{name: "done is terminal", from: model.StatusDone, to: model.StatusPending, want: false},
		{name: "unknown status has no transitions", from: "unknown", to: model.StatusAccepted, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestCoveredHours(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		wantFrom int
		wantTo   int
	}{
		{
			name:     "whole hours",
			start:    time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			end:      time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
			wantFrom: 9,
			wantTo:   11,
		},
		{
			name:     "partial final hour rounds up",
			start:    time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			end:      time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
			wantFrom: 9,
			wantTo:   11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{StartTime: tt.start, EndTime: tt.end}

			from, to := booking.CoveredHours()

			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestElapsed(t *testing.T) {
	booking := model.Booking{
		BookingDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{
			name: "before the end time",
			now:  time.Date(2026, 3, 2, 9, 59, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "exactly at the end time",
			now:  time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "seconds into the closing minute still count as ended",
			now:  time.Date(2026, 3, 2, 10, 0, 45, 0, time.UTC),
			want: true,
		},
		{
			name: "well past the end time",
			now:  time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "a day later",
			now:  time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Elapsed(tt.now))
		})
	}
}

package dto

import (
	"fmt"

	"inspirehub/internal/domains/schedule"
)

type SlotResponse struct {
	Hour   string `json:"hour"`
	Status string `json:"status"`
}

type AvailabilityResponse struct {
	ResourceID string         `json:"resource_id"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

func (r *AvailabilityResponse) FromGrid(resourceID, date string, grid schedule.Grid) {
	r.ResourceID = resourceID
	r.Date = date

	r.Slots = make([]SlotResponse, len(grid))
	for i, slot := range grid {
		r.Slots[i] = SlotResponse{
			Hour:   fmt.Sprintf("%02d:00", slot.Hour),
			Status: string(slot.Status),
		}
	}
}

type QuoteRequest struct {
	ResourceID    string `json:"resource_id"    validate:"required"`
	BookingDate   string `json:"booking_date"   validate:"required"`
	StartHour     int    `json:"start_hour"     validate:"min=0,max=23"`
	DurationHours int    `json:"duration_hours" validate:"required,min=1"`
}

type QuoteResponse struct {
	ResourceID       string `json:"resource_id"`
	BookingDate      string `json:"booking_date"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	RegularHours     int    `json:"regular_hours"`
	AfterHours       int    `json:"after_hours"`
	RegularAmount    int64  `json:"regular_amount"`
	AfterHoursAmount int64  `json:"after_hours_amount"`
	Total            int64  `json:"total"`
}

func (r *QuoteResponse) FromBreakdown(req QuoteRequest, breakdown schedule.Breakdown) {
	r.ResourceID = req.ResourceID
	r.BookingDate = req.BookingDate
	r.StartTime = fmt.Sprintf("%02d:00", req.StartHour)
	r.EndTime = fmt.Sprintf("%02d:00", req.StartHour+req.DurationHours)
	r.RegularHours = breakdown.RegularHours
	r.AfterHours = breakdown.AfterHours
	r.RegularAmount = breakdown.RegularAmount
	r.AfterHoursAmount = breakdown.AfterHoursAmount
	r.Total = breakdown.Total
}

package schedule

// Breakdown is the price decomposition of a selection: the hours billed at the
// base rate, the hours billed with the after-hours surcharge, and the totals in
// the smallest currency unit.
type Breakdown struct {
	RegularHours     int
	AfterHours       int
	RegularAmount    int64
	AfterHoursAmount int64
	Total            int64
}

// Cost prices an hour range at the given base hourly rate. Hours before the
// after-hours boundary cost the plain rate; hours from the boundary up to the
// hard close carry the surcharge. A span straddling the boundary is split and
// each side priced separately. Amounts are floored to the smallest currency
// unit.
func (p Policy) Cost(rate int64, startHour, durationHours int) Breakdown {
	var breakdown Breakdown

	if durationHours < 1 {
		return breakdown
	}

	endHour := startHour + durationHours

	for hour := startHour; hour < endHour; hour++ {
		if hour >= p.AfterHoursStart && hour < p.HardCloseHour {
			breakdown.AfterHours++
		} else {
			breakdown.RegularHours++
		}
	}

	breakdown.RegularAmount = rate * int64(breakdown.RegularHours)
	breakdown.AfterHoursAmount = rate * int64(breakdown.AfterHours) * (100 + p.SurchargePercent) / 100
	breakdown.Total = breakdown.RegularAmount + breakdown.AfterHoursAmount

	return breakdown
}

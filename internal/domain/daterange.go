package domain

import "github.com/voom-app/VOOM-RentalService/pkg/types"

// DateRange represents a closed [StartDate, EndDate] interval of calendar
// days during which a vehicle is unavailable for new reservations.
// Derived from a blocking booking; recomputed on every load, never persisted.
type DateRange struct {
	StartDate types.Date
	EndDate   types.Date
}

// IsValid returns true if the range forms a usable interval.
// Bookings whose dates fail this check are skipped, not reported as errors.
func (r DateRange) IsValid() bool {
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return false
	}
	return !r.EndDate.Before(r.StartDate)
}

// Contains reports whether d falls inside the closed interval.
// Both boundary days count as occupied.
func (r DateRange) Contains(d types.Date) bool {
	return !d.Before(r.StartDate) && !d.After(r.EndDate)
}

// Overlaps reports whether two closed intervals share at least one day
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.StartDate.After(other.EndDate) && !r.EndDate.Before(other.StartDate)
}

// Days returns the inclusive number of days covered by the range.
// A single-day range counts as 1.
func (r DateRange) Days() int {
	return r.StartDate.DaysUntil(r.EndDate) + 1
}

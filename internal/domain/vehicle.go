package domain

import "time"

// Vehicle represents a car listed by a host on the marketplace
type Vehicle struct {
	ID        int64
	HostID    int64
	Make      string
	Model     string
	Year      int
	DailyRate float64
	Currency  string
	Location  string

	Rating      *float64 // nil = автомобиль ещё не оценивали
	RatingCount int

	Available    bool
	Features     []string
	Category     string // sedan, suv, truck, ...
	Transmission string
	FuelType     string
	Seats        int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RatingOrZero returns the vehicle rating, treating "never rated" as 0.
// Used by the catalog default and rating_desc orderings.
func (v *Vehicle) RatingOrZero() float64 {
	if v.Rating == nil {
		return 0
	}
	return *v.Rating
}

// HasFeature returns true if the vehicle's feature set contains the tag
func (v *Vehicle) HasFeature(feature string) bool {
	for _, f := range v.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// HasAllFeatures returns true if the vehicle's feature set contains
// every required tag. A vehicle with no features fails any non-empty
// requirement.
func (v *Vehicle) HasAllFeatures(required []string) bool {
	if len(required) == 0 {
		return true
	}
	if len(v.Features) == 0 {
		return false
	}
	for _, feature := range required {
		if !v.HasFeature(feature) {
			return false
		}
	}
	return true
}

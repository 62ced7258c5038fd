package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	"github.com/voom-app/VOOM-RentalService/pkg/ptr"
)

func vehicle(id int64, mod func(*domain.Vehicle)) *domain.Vehicle {
	v := &domain.Vehicle{
		ID:           id,
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2022,
		DailyRate:    50,
		Available:    true,
		Category:     "sedan",
		Transmission: "automatic",
		FuelType:     "petrol",
		Seats:        5,
	}
	if mod != nil {
		mod(v)
	}
	return v
}

func ids(vehicles []*domain.Vehicle) []int64 {
	out := make([]int64, len(vehicles))
	for i, v := range vehicles {
		out[i] = v.ID
	}
	return out
}

func TestMatch_Category(t *testing.T) {
	v := vehicle(1, nil)

	assert.True(t, Match(v, &domain.VehicleFilter{}))
	assert.True(t, Match(v, &domain.VehicleFilter{Category: "all"}), `"all" means any category`)
	assert.True(t, Match(v, &domain.VehicleFilter{Category: "Sedan"}), "category is case-insensitive")
	assert.False(t, Match(v, &domain.VehicleFilter{Category: "suv"}))
}

func TestMatch_Makes(t *testing.T) {
	v := vehicle(1, nil)

	assert.True(t, Match(v, &domain.VehicleFilter{Makes: nil}), "empty set does not constrain")
	assert.True(t, Match(v, &domain.VehicleFilter{Makes: []string{"bmw", "TOYOTA"}}))
	assert.False(t, Match(v, &domain.VehicleFilter{Makes: []string{"bmw", "audi"}}))
}

func TestMatch_AvailableOnly(t *testing.T) {
	unavailable := vehicle(1, func(v *domain.Vehicle) { v.Available = false })

	assert.True(t, Match(unavailable, &domain.VehicleFilter{}))
	assert.False(t, Match(unavailable, &domain.VehicleFilter{AvailableOnly: true}))
}

func TestMatch_PriceRangeInclusive(t *testing.T) {
	v := vehicle(1, func(v *domain.Vehicle) { v.DailyRate = 50 })

	assert.True(t, Match(v, &domain.VehicleFilter{PriceMin: ptr.Ptr(50.0)}), "lower bound inclusive")
	assert.True(t, Match(v, &domain.VehicleFilter{PriceMax: ptr.Ptr(50.0)}), "upper bound inclusive")
	assert.False(t, Match(v, &domain.VehicleFilter{PriceMin: ptr.Ptr(50.01)}))
	assert.False(t, Match(v, &domain.VehicleFilter{PriceMax: ptr.Ptr(49.99)}))

	// min > max - всегда ложное условие
	assert.False(t, Match(v, &domain.VehicleFilter{PriceMin: ptr.Ptr(60.0), PriceMax: ptr.Ptr(40.0)}))
}

func TestMatch_ExactYearAndSeats(t *testing.T) {
	v := vehicle(1, nil)

	assert.True(t, Match(v, &domain.VehicleFilter{Year: ptr.Ptr(2022), Seats: ptr.Ptr(5)}))
	assert.False(t, Match(v, &domain.VehicleFilter{Year: ptr.Ptr(2021)}))
	assert.False(t, Match(v, &domain.VehicleFilter{Seats: ptr.Ptr(7)}))
}

func TestMatch_MinRating(t *testing.T) {
	rated := vehicle(1, func(v *domain.Vehicle) { v.Rating = ptr.Ptr(4.5) })
	unrated := vehicle(2, nil)

	assert.True(t, Match(rated, &domain.VehicleFilter{MinRating: ptr.Ptr(4.5)}))
	assert.False(t, Match(rated, &domain.VehicleFilter{MinRating: ptr.Ptr(4.6)}))
	assert.False(t, Match(unrated, &domain.VehicleFilter{MinRating: ptr.Ptr(0.1)}),
		"vehicle without a rating fails any rating constraint")
	assert.True(t, Match(unrated, &domain.VehicleFilter{}))
}

func TestMatch_TransmissionAndFuelCaseInsensitive(t *testing.T) {
	v := vehicle(1, nil)

	assert.True(t, Match(v, &domain.VehicleFilter{Transmission: ptr.Ptr("Automatic"), FuelType: ptr.Ptr("PETROL")}))
	assert.False(t, Match(v, &domain.VehicleFilter{Transmission: ptr.Ptr("manual")}))
	assert.False(t, Match(v, &domain.VehicleFilter{FuelType: ptr.Ptr("diesel")}))
}

func TestMatch_FeaturesSuperset(t *testing.T) {
	v := vehicle(1, func(v *domain.Vehicle) { v.Features = []string{"gps", "bluetooth", "sunroof"} })
	bare := vehicle(2, nil)

	assert.True(t, Match(v, &domain.VehicleFilter{Features: []string{"gps", "sunroof"}}))
	assert.False(t, Match(v, &domain.VehicleFilter{Features: []string{"gps", "tow_hitch"}}),
		"every required feature must be present")
	assert.False(t, Match(bare, &domain.VehicleFilter{Features: []string{"gps"}}))
	assert.True(t, Match(bare, &domain.VehicleFilter{Features: nil}))
}

func TestSort_PriceAscAndDesc(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, func(v *domain.Vehicle) { v.DailyRate = 90 }),
		vehicle(2, func(v *domain.Vehicle) { v.DailyRate = 40 }),
		vehicle(3, func(v *domain.Vehicle) { v.DailyRate = 60 }),
	}

	Sort(vehicles, domain.SortPriceAsc)
	assert.Equal(t, []int64{2, 3, 1}, ids(vehicles))

	Sort(vehicles, domain.SortPriceDesc)
	assert.Equal(t, []int64{1, 3, 2}, ids(vehicles))
}

func TestSort_RatingDescNilAsZero(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, nil), // без рейтинга
		vehicle(2, func(v *domain.Vehicle) { v.Rating = ptr.Ptr(4.8) }),
		vehicle(3, func(v *domain.Vehicle) { v.Rating = ptr.Ptr(3.9) }),
	}

	Sort(vehicles, domain.SortRatingDesc)
	assert.Equal(t, []int64{2, 3, 1}, ids(vehicles))
}

func TestSort_Newest(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, func(v *domain.Vehicle) { v.Year = 2020 }),
		vehicle(2, func(v *domain.Vehicle) { v.Year = 2024 }),
		vehicle(3, func(v *domain.Vehicle) { v.Year = 2022 }),
	}

	Sort(vehicles, domain.SortNewest)
	assert.Equal(t, []int64{2, 3, 1}, ids(vehicles))
}

func TestSort_DefaultRatingThenPrice(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, func(v *domain.Vehicle) { v.Rating = ptr.Ptr(4.5); v.DailyRate = 80 }),
		vehicle(2, func(v *domain.Vehicle) { v.Rating = ptr.Ptr(4.5); v.DailyRate = 55 }),
		vehicle(3, func(v *domain.Vehicle) { v.Rating = ptr.Ptr(4.9); v.DailyRate = 100 }),
		vehicle(4, func(v *domain.Vehicle) { v.DailyRate = 20 }), // без рейтинга - в конец
	}

	Sort(vehicles, domain.SortDefault)
	assert.Equal(t, []int64{3, 2, 1, 4}, ids(vehicles))
}

func TestSort_Stability(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, func(v *domain.Vehicle) { v.DailyRate = 50 }),
		vehicle(2, func(v *domain.Vehicle) { v.DailyRate = 50 }),
		vehicle(3, func(v *domain.Vehicle) { v.DailyRate = 50 }),
	}

	Sort(vehicles, domain.SortPriceAsc)
	assert.Equal(t, []int64{1, 2, 3}, ids(vehicles), "equal keys keep their original order")
}

func TestApply_FiltersThenSortsWithoutMutatingInput(t *testing.T) {
	input := []*domain.Vehicle{
		vehicle(1, func(v *domain.Vehicle) { v.DailyRate = 90; v.Category = "suv" }),
		vehicle(2, func(v *domain.Vehicle) { v.DailyRate = 40 }),
		vehicle(3, func(v *domain.Vehicle) { v.DailyRate = 60 }),
		vehicle(4, func(v *domain.Vehicle) { v.DailyRate = 30; v.Available = false }),
	}

	result := Apply(input, &domain.VehicleFilter{
		Category:      "sedan",
		AvailableOnly: true,
		Sort:          domain.SortPriceAsc,
	})

	require.Equal(t, []int64{2, 3}, ids(result))
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(input), "input order is preserved")
}

func TestApply_NarrowerFilterNeverGrowsResult(t *testing.T) {
	input := []*domain.Vehicle{
		vehicle(1, func(v *domain.Vehicle) { v.DailyRate = 90 }),
		vehicle(2, func(v *domain.Vehicle) { v.DailyRate = 40 }),
		vehicle(3, func(v *domain.Vehicle) { v.DailyRate = 60; v.Make = "BMW" }),
	}

	loose := Apply(input, &domain.VehicleFilter{PriceMax: ptr.Ptr(100.0)})
	tight := Apply(input, &domain.VehicleFilter{PriceMax: ptr.Ptr(100.0), Makes: []string{"toyota"}})

	assert.LessOrEqual(t, len(tight), len(loose))
	assert.Equal(t, []int64{2, 1}, ids(tight), "default order: rating desc, then price asc")
}

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	"github.com/voom-app/VOOM-RentalService/pkg/ptr"
)

func TestFilterKey_OrderOfSetsDoesNotMatter(t *testing.T) {
	a := &domain.VehicleFilter{
		Makes:    []string{"Toyota", "BMW"},
		Features: []string{"gps", "bluetooth"},
	}
	b := &domain.VehicleFilter{
		Makes:    []string{"bmw", "TOYOTA"},
		Features: []string{"bluetooth", "gps"},
	}

	assert.Equal(t, FilterKey(a), FilterKey(b), "equivalent filters share a cache key")
}

func TestFilterKey_CaseInsensitiveFields(t *testing.T) {
	a := &domain.VehicleFilter{Category: "SUV", Transmission: ptr.Ptr("Automatic"), FuelType: ptr.Ptr("Petrol")}
	b := &domain.VehicleFilter{Category: "suv", Transmission: ptr.Ptr("automatic"), FuelType: ptr.Ptr("petrol")}

	assert.Equal(t, FilterKey(a), FilterKey(b))
}

func TestFilterKey_FeatureCaseIsSignificant(t *testing.T) {
	// Фичи сравниваются точно (features @> в SQL, точное сравнение в
	// движке), поэтому разный регистр - это разные фильтры с разной выдачей
	a := &domain.VehicleFilter{Features: []string{"gps"}}
	b := &domain.VehicleFilter{Features: []string{"GPS"}}

	assert.NotEqual(t, FilterKey(a), FilterKey(b))
}

func TestFilterKey_DifferentFiltersDiffer(t *testing.T) {
	base := &domain.VehicleFilter{Category: "sedan"}

	variants := []*domain.VehicleFilter{
		{Category: "suv"},
		{Category: "sedan", AvailableOnly: true},
		{Category: "sedan", PriceMax: ptr.Ptr(100.0)},
		{Category: "sedan", Seats: ptr.Ptr(7)},
		{Category: "sedan", Sort: domain.SortPriceAsc},
	}

	for _, v := range variants {
		assert.NotEqual(t, FilterKey(base), FilterKey(v))
	}
}

func TestFilterKey_UnsetNumericFieldIsNotZero(t *testing.T) {
	unset := &domain.VehicleFilter{}
	zeroRating := &domain.VehicleFilter{MinRating: ptr.Ptr(0.0)}

	assert.NotEqual(t, FilterKey(unset), FilterKey(zeroRating))
}

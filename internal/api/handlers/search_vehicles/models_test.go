package search_vehicles

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
)

func TestToFilter_FullQuery(t *testing.T) {
	query := url.Values{}
	query.Set("category", "suv")
	query.Set("makes", "Toyota, BMW")
	query.Set("features", "gps,bluetooth")
	query.Set("availableOnly", "true")
	query.Set("priceMin", "40")
	query.Set("priceMax", "120.5")
	query.Set("year", "2023")
	query.Set("minRating", "4.5")
	query.Set("transmission", "automatic")
	query.Set("fuelType", "petrol")
	query.Set("seats", "5")
	query.Set("sort", "price_asc")

	filter, err := ToFilter(query)

	require.NoError(t, err)
	assert.Equal(t, "suv", filter.Category)
	assert.Equal(t, []string{"Toyota", "BMW"}, filter.Makes, "comma list is split and trimmed")
	assert.Equal(t, []string{"gps", "bluetooth"}, filter.Features)
	assert.True(t, filter.AvailableOnly)
	require.NotNil(t, filter.PriceMin)
	assert.Equal(t, 40.0, *filter.PriceMin)
	require.NotNil(t, filter.PriceMax)
	assert.Equal(t, 120.5, *filter.PriceMax)
	require.NotNil(t, filter.Year)
	assert.Equal(t, 2023, *filter.Year)
	require.NotNil(t, filter.MinRating)
	assert.Equal(t, 4.5, *filter.MinRating)
	require.NotNil(t, filter.Seats)
	assert.Equal(t, 5, *filter.Seats)
	assert.Equal(t, domain.SortPriceAsc, filter.Sort)
}

func TestToFilter_EmptyQuery(t *testing.T) {
	filter, err := ToFilter(url.Values{})

	require.NoError(t, err)
	assert.Empty(t, filter.Category)
	assert.Nil(t, filter.Makes)
	assert.Nil(t, filter.Features)
	assert.Nil(t, filter.PriceMin)
	assert.Nil(t, filter.Seats)
	assert.Equal(t, domain.SortDefault, filter.Sort, "no sort parameter means default ordering")
}

func TestToFilter_InvalidValues(t *testing.T) {
	for _, param := range []struct{ key, value string }{
		{"availableOnly", "maybe"},
		{"priceMin", "cheap"},
		{"priceMax", "-"},
		{"year", "new"},
		{"minRating", "high"},
		{"seats", "many"},
	} {
		query := url.Values{}
		query.Set(param.key, param.value)

		_, err := ToFilter(query)
		assert.Error(t, err, "param %s=%s", param.key, param.value)
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , ,"))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,, b"))
}

package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	"github.com/voom-app/VOOM-RentalService/pkg/psqlbuilder"
)

func buildListQuery(t *testing.T, filter *domain.VehicleFilter) (string, []interface{}) {
	t.Helper()

	query, args, err := applyFilter(psqlbuilder.Select("id").From("vehicles"), filter).ToSql()
	require.NoError(t, err)
	return query, args
}

func TestApplyFilter_EmptyFilterAddsNoConditions(t *testing.T) {
	query, args := buildListQuery(t, &domain.VehicleFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestApplyFilter_MakeClauseIsCaseInsensitive(t *testing.T) {
	// Семантика движка: makes=toyota находит и "Toyota"
	query, args := buildListQuery(t, &domain.VehicleFilter{Makes: []string{"Toyota", "BMW"}})

	assert.Contains(t, query, "LOWER(make) IN ($1,$2)")
	assert.Equal(t, []interface{}{"toyota", "bmw"}, args)
}

func TestApplyFilter_CategoryFoldedAllSkipped(t *testing.T) {
	query, args := buildListQuery(t, &domain.VehicleFilter{Category: "SUV"})
	assert.Contains(t, query, "LOWER(category) = LOWER($1)")
	assert.Equal(t, []interface{}{"SUV"}, args)

	query, _ = buildListQuery(t, &domain.VehicleFilter{Category: "all"})
	assert.NotContains(t, query, "category")
}

func TestApplyFilter_FeaturesKeptVerbatim(t *testing.T) {
	// Фичи сравниваются точно - регистр аргументов не трогаем
	query, args := buildListQuery(t, &domain.VehicleFilter{Features: []string{"GPS"}})

	assert.Contains(t, query, "features @> $1")
	require.Len(t, args, 1)
}

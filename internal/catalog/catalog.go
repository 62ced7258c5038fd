// Package catalog реализует фильтрацию и сортировку каталога автомобилей.
// Пакет чистый: принимает уже загруженный список и спецификацию фильтра,
// входные данные не мутирует. SQL-версия того же предиката живёт в
// репозитории автомобилей; порядок по умолчанию у них общий.
package catalog

import (
	"sort"
	"strings"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
)

// Match evaluates the full filter predicate for a single vehicle.
// All clauses are AND'ed; a clause whose filter field is unset is
// always true. Every vehicle is evaluated independently.
func Match(v *domain.Vehicle, f *domain.VehicleFilter) bool {
	// 1. Категория (без учета регистра, "all" = любая)
	if f.HasCategoryConstraint() && !strings.EqualFold(v.Category, f.Category) {
		return false
	}

	// 2. Марка из набора
	if len(f.Makes) > 0 && !containsFold(f.Makes, v.Make) {
		return false
	}

	// 3. Только доступные
	if f.AvailableOnly && !v.Available {
		return false
	}

	// 4. Диапазон цены (включительно). При min > max условие всегда ложно -
	// поддержание инварианта лежит на вызывающей стороне.
	if f.PriceMin != nil && v.DailyRate < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && v.DailyRate > *f.PriceMax {
		return false
	}

	// 5. Точный год
	if f.Year != nil && v.Year != *f.Year {
		return false
	}

	// 6. Минимальный рейтинг: автомобиль без рейтинга не проходит
	if f.MinRating != nil && (v.Rating == nil || *v.Rating < *f.MinRating) {
		return false
	}

	// 7. Коробка передач / тип топлива (без учета регистра)
	if f.Transmission != nil && !strings.EqualFold(v.Transmission, *f.Transmission) {
		return false
	}
	if f.FuelType != nil && !strings.EqualFold(v.FuelType, *f.FuelType) {
		return false
	}

	// 8. Количество мест (точное совпадение)
	if f.Seats != nil && v.Seats != *f.Seats {
		return false
	}

	// 9. Обязательные фичи (AND-семантика)
	if !v.HasAllFeatures(f.Features) {
		return false
	}

	return true
}

// Apply reduces the full vehicle listing to the filtered, ordered subset.
// Filtering is total and order-independent; sorting is stable, so equal
// keys keep their original relative order. The input slice is not modified.
func Apply(vehicles []*domain.Vehicle, f *domain.VehicleFilter) []*domain.Vehicle {
	result := make([]*domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if Match(v, f) {
			result = append(result, v)
		}
	}

	Sort(result, f.Sort)
	return result
}

// Sort orders vehicles in place by the given key. The default (unset)
// key applies the canonical ordering: rating descending, then daily rate
// ascending - identical to the repository's default ORDER BY.
func Sort(vehicles []*domain.Vehicle, key domain.SortKey) {
	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].DailyRate < vehicles[j].DailyRate
		})
	case domain.SortPriceDesc:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].DailyRate > vehicles[j].DailyRate
		})
	case domain.SortRatingDesc:
		// Отсутствующий рейтинг сортируется как 0
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].RatingOrZero() > vehicles[j].RatingOrZero()
		})
	case domain.SortNewest:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].Year > vehicles[j].Year
		})
	default:
		sort.SliceStable(vehicles, func(i, j int) bool {
			ri, rj := vehicles[i].RatingOrZero(), vehicles[j].RatingOrZero()
			if ri != rj {
				return ri > rj
			}
			return vehicles[i].DailyRate < vehicles[j].DailyRate
		})
	}
}

// containsFold проверяет вхождение строки в набор без учета регистра
func containsFold(set []string, s string) bool {
	for _, item := range set {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

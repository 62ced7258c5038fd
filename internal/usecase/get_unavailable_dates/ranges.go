package get_unavailable_dates

import (
	"sort"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
)

// mergeRanges сортирует интервалы недоступности и сливает пересекающиеся
// и смежные (конец одного - канун начала следующего). Календарю всё
// равно, сколькими бронированиями занят непрерывный блок дней.
func mergeRanges(ranges []domain.DateRange) []domain.DateRange {
	if len(ranges) <= 1 {
		return ranges
	}

	sorted := make([]domain.DateRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].StartDate.Equal(sorted[j].StartDate) {
			return sorted[i].StartDate.Before(sorted[j].StartDate)
		}
		return sorted[i].EndDate.Before(sorted[j].EndDate)
	})

	merged := make([]domain.DateRange, 0, len(sorted))
	current := sorted[0]

	for _, r := range sorted[1:] {
		// Смежные интервалы тоже сливаем: следующий начинается не позже,
		// чем через день после конца текущего
		if !r.StartDate.After(current.EndDate.AddDays(1)) {
			if r.EndDate.After(current.EndDate) {
				current.EndDate = r.EndDate
			}
			continue
		}

		merged = append(merged, current)
		current = r
	}

	return append(merged, current)
}

// clampRanges обрезает интервалы рамками периода [from, to] и
// отбрасывает интервалы, целиком лежащие вне периода
func clampRanges(ranges []domain.DateRange, window domain.DateRange) []domain.DateRange {
	result := make([]domain.DateRange, 0, len(ranges))

	for _, r := range ranges {
		if !r.Overlaps(window) {
			continue
		}
		clamped := r
		if clamped.StartDate.Before(window.StartDate) {
			clamped.StartDate = window.StartDate
		}
		if clamped.EndDate.After(window.EndDate) {
			clamped.EndDate = window.EndDate
		}
		result = append(result, clamped)
	}

	return result
}

package domain

// SortKey determines catalog result ordering
type SortKey string

const (
	SortDefault    SortKey = ""
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortRatingDesc SortKey = "rating_desc"
	SortNewest     SortKey = "newest"
)

// IsValid returns true for a known sort key (the empty default included)
func (s SortKey) IsValid() bool {
	switch s {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortRatingDesc, SortNewest:
		return true
	default:
		return false
	}
}

// VehicleFilter описывает все активные ограничения каталога.
// Незаполненное поле означает "без ограничения": пустой набор марок или
// фич не исключает ничего. Инвариант PriceMin <= PriceMax поддерживается
// вызывающей стороной; нарушенный диапазон даёт всегда-ложное условие.
type VehicleFilter struct {
	Category      string   // "" или "all" = любая категория
	Makes         []string // Марка из набора (пустой набор = любая)
	AvailableOnly bool     // Только доступные автомобили
	PriceMin      *float64 // Нижняя граница дневной ставки (включительно)
	PriceMax      *float64 // Верхняя граница дневной ставки (включительно)
	Year          *int     // Точный год выпуска
	MinRating     *float64 // Минимальный рейтинг
	Transmission  *string  // Коробка передач
	FuelType      *string  // Тип топлива
	Seats         *int     // Точное количество мест
	Features      []string // Обязательные фичи (AND-семантика)
	Sort          SortKey  // Ключ сортировки
}

// HasCategoryConstraint reports whether the category clause is active
func (f *VehicleFilter) HasCategoryConstraint() bool {
	return f.Category != "" && f.Category != "all"
}

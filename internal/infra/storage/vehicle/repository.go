package vehicle

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	"github.com/voom-app/VOOM-RentalService/pkg/dbmetrics"
	"github.com/voom-app/VOOM-RentalService/pkg/psqlbuilder"
)

var vehicleColumns = []string{
	"id",
	"host_id",
	"make",
	"model",
	"year",
	"daily_rate",
	"currency",
	"location",
	"rating",
	"rating_count",
	"available",
	"features",
	"category",
	"transmission",
	"fuel_type",
	"seats",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с каталогом автомобилей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое объявление об автомобиле (хостовый флоу листинга)
func (r *Repository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns(
			"host_id",
			"make",
			"model",
			"year",
			"daily_rate",
			"currency",
			"location",
			"available",
			"features",
			"category",
			"transmission",
			"fuel_type",
			"seats",
		).
		Values(
			v.HostID,
			v.Make,
			v.Model,
			v.Year,
			v.DailyRate,
			v.Currency,
			v.Location,
			v.Available,
			pq.Array(v.Features),
			v.Category,
			v.Transmission,
			v.FuelType,
			v.Seats,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	v, err := scanVehicleRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %v", ErrScanRow, err)
	}

	return v, nil
}

// List получает автомобили, удовлетворяющие спецификации фильтра.
// SQL-версия предиката каталога: те же девять условий, незаполненное
// поле фильтра не добавляет WHERE. Порядок по умолчанию канонический -
// rating DESC NULLS LAST, daily_rate ASC - и совпадает с тем, что
// применяет in-memory движок каталога.
func (r *Repository) List(ctx context.Context, filter *domain.VehicleFilter) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(vehicleColumns...).From("vehicles"), filter).
		OrderBy(orderByForSort(filter.Sort)...)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanVehicles(rows)
}

// applyFilter навешивает WHERE-условия предиката каталога на запрос.
// Семантика условий повторяет in-memory движок: категория, марки,
// коробка и топливо - без учета регистра, фичи - точное вхождение
func applyFilter(b squirrel.SelectBuilder, filter *domain.VehicleFilter) squirrel.SelectBuilder {
	// 1. Категория (без учета регистра, "all" = любая)
	if filter.HasCategoryConstraint() {
		b = b.Where(squirrel.Expr("LOWER(category) = LOWER(?)", filter.Category))
	}

	// 2. Марка из набора (без учета регистра, как в движке)
	if len(filter.Makes) > 0 {
		makes := make([]string, len(filter.Makes))
		for i, m := range filter.Makes {
			makes[i] = strings.ToLower(m)
		}
		b = b.Where(squirrel.Eq{"LOWER(make)": makes})
	}

	// 3. Только доступные
	if filter.AvailableOnly {
		b = b.Where(squirrel.Eq{"available": true})
	}

	// 4. Диапазон цены (включительно)
	if filter.PriceMin != nil {
		b = b.Where(squirrel.GtOrEq{"daily_rate": *filter.PriceMin})
	}
	if filter.PriceMax != nil {
		b = b.Where(squirrel.LtOrEq{"daily_rate": *filter.PriceMax})
	}

	// 5. Точный год
	if filter.Year != nil {
		b = b.Where(squirrel.Eq{"year": *filter.Year})
	}

	// 6. Минимальный рейтинг: NULL-рейтинг не проходит сравнение
	if filter.MinRating != nil {
		b = b.Where(squirrel.GtOrEq{"rating": *filter.MinRating})
	}

	// 7. Коробка передач / тип топлива
	if filter.Transmission != nil {
		b = b.Where(squirrel.Expr("LOWER(transmission) = LOWER(?)", *filter.Transmission))
	}
	if filter.FuelType != nil {
		b = b.Where(squirrel.Expr("LOWER(fuel_type) = LOWER(?)", *filter.FuelType))
	}

	// 8. Количество мест
	if filter.Seats != nil {
		b = b.Where(squirrel.Eq{"seats": *filter.Seats})
	}

	// 9. Обязательные фичи: features должен содержать весь требуемый набор
	if len(filter.Features) > 0 {
		b = b.Where(squirrel.Expr("features @> ?", pq.Array(filter.Features)))
	}

	return b
}

// GetByHostID получает все автомобили хоста
func (r *Repository) GetByHostID(ctx context.Context, hostID int64) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"host_id": hostID}).
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByHostID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHostID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanVehicles(rows)
}

// SetAvailability включает/выключает доступность автомобиля в каталоге
func (r *Repository) SetAvailability(ctx context.Context, id int64, available bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicles").
		Set("available", available).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

// Delete удаляет объявление (физическое удаление, использовать осторожно)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

// orderByForSort возвращает ORDER BY для ключа сортировки.
// Дефолтный порядок обязан совпадать с catalog.Sort.
func orderByForSort(key domain.SortKey) []string {
	switch key {
	case domain.SortPriceAsc:
		return []string{"daily_rate ASC", "id ASC"}
	case domain.SortPriceDesc:
		return []string{"daily_rate DESC", "id ASC"}
	case domain.SortRatingDesc:
		return []string{"rating DESC NULLS LAST", "id ASC"}
	case domain.SortNewest:
		return []string{"year DESC", "id ASC"}
	default:
		return []string{"rating DESC NULLS LAST", "daily_rate ASC", "id ASC"}
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanVehicleRow сканирует одну строку результата в автомобиль
func scanVehicleRow(row rowScanner) (*domain.Vehicle, error) {
	var v domain.Vehicle
	var rating sql.NullFloat64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.HostID,
		&v.Make,
		&v.Model,
		&v.Year,
		&v.DailyRate,
		&v.Currency,
		&v.Location,
		&rating,
		&v.RatingCount,
		&v.Available,
		pq.Array(&v.Features),
		&v.Category,
		&v.Transmission,
		&v.FuelType,
		&v.Seats,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	if rating.Valid {
		v.Rating = &rating.Float64
	}
	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

// scanVehicles сканирует результаты запроса в слайс автомобилей
func scanVehicles(rows *sql.Rows) ([]*domain.Vehicle, error) {
	vehicles := make([]*domain.Vehicle, 0)

	for rows.Next() {
		v, err := scanVehicleRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanVehicles - scan row: %v", ErrScanRow, err)
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVehicles - rows error: %v", ErrScanRow, err)
	}

	return vehicles, nil
}

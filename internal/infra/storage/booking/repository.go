package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	"github.com/voom-app/VOOM-RentalService/pkg/dbmetrics"
	"github.com/voom-app/VOOM-RentalService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"reference",
	"vehicle_id",
	"renter_id",
	"start_date",
	"end_date",
	"status",
	"pickup_location",
	"dropoff_location",
	"total_amount",
	"currency",
	"payment_method",
	"vehicle_make",
	"vehicle_model",
	"vehicle_year",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// При создании с проверкой доступности дат создание ДОЛЖНО выполняться в той же
// сериализуемой транзакции, что и выборка блокирующих бронирований.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"vehicle_id",
			"renter_id",
			"start_date",
			"end_date",
			"status",
			"pickup_location",
			"dropoff_location",
			"total_amount",
			"currency",
			"payment_method",
			"vehicle_make",
			"vehicle_model",
			"vehicle_year",
		).
		Values(
			booking.Reference,
			booking.VehicleID,
			booking.RenterID,
			booking.StartDate,
			booking.EndDate,
			booking.Status,
			booking.PickupLocation,
			booking.DropoffLocation,
			booking.TotalAmount,
			booking.Currency,
			booking.PaymentMethod,
			booking.VehicleMake,
			booking.VehicleModel,
			booking.VehicleYear,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByReference получает бронирование по публичному коду
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"reference": reference}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByReference")
}

// GetByRenterID получает список бронирований арендатора
// Опционально фильтрует по статусу
func (r *Repository) GetByRenterID(ctx context.Context, renterID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"renter_id": renterID}).
		OrderBy("start_date DESC, id DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRenterID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRenterID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByVehicleWithFilter получает бронирования автомобиля с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Периоду (StartDate, EndDate): возвращаются бронирования, ПЕРЕСЕКАЮЩИЕСЯ с периодом
// - Статусу (Status) - опционально
// - Только блокирующим статусам (BlockingOnly) - для вычисления занятых дат
//
// Примеры использования:
//
// 1. Все бронирования автомобиля:
//    filter := domain.VehicleBookingsFilter{VehicleID: 123}
//
// 2. Блокирующие бронирования, пересекающие запрошенный диапазон:
//    filter := domain.VehicleBookingsFilter{VehicleID: 123, StartDate: &from, EndDate: &to, BlockingOnly: true}
//
// 3. Только подтвержденные:
//    status := domain.StatusConfirmed
//    filter := domain.VehicleBookingsFilter{VehicleID: 123, Status: &status}
func (r *Repository) GetByVehicleWithFilter(ctx context.Context, filter domain.VehicleBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"vehicle_id": filter.VehicleID})

	// Пересечение с периодом: бронирование задевает период, если
	// start_date <= конец периода И end_date >= начало периода
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": *filter.EndDate})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": *filter.StartDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if filter.BlockingOnly {
		// Для вычисления занятости интересны только блокирующие статусы
		blockingStatusStrings := make([]string, len(domain.BlockingStatuses))
		for i, s := range domain.BlockingStatuses {
			blockingStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": blockingStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("start_date ASC, id ASC")

	// Внутри транзакции блокируем выбранные строки: usecase создания
	// бронирования перепроверяет занятость дат перед вставкой
	if dbmetrics.IsInTransaction(ctx) && filter.BlockingOnly {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicleWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicleWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну строку результата в бронирование
func (r *Repository) scanBooking(row *sql.Row, op string) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.VehicleID,
		&booking.RenterID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Status,
		&booking.PickupLocation,
		&booking.DropoffLocation,
		&booking.TotalAmount,
		&booking.Currency,
		&booking.PaymentMethod,
		&booking.VehicleMake,
		&booking.VehicleModel,
		&booking.VehicleYear,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.Reference,
			&booking.VehicleID,
			&booking.RenterID,
			&booking.StartDate,
			&booking.EndDate,
			&booking.Status,
			&booking.PickupLocation,
			&booking.DropoffLocation,
			&booking.TotalAmount,
			&booking.Currency,
			&booking.PaymentMethod,
			&booking.VehicleMake,
			&booking.VehicleModel,
			&booking.VehicleYear,
			&booking.CancellationReason,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

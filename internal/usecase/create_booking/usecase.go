package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/voom-app/VOOM-RentalService/internal/availability"
	"github.com/voom-app/VOOM-RentalService/internal/domain"
	vehicleRepo "github.com/voom-app/VOOM-RentalService/internal/infra/storage/vehicle"
	"github.com/voom-app/VOOM-RentalService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	vehicleRepo  VehicleRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		vehicleRepo:  vehicleRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Занятость дат перепроверяется на сервере в сериализуемой транзакции:
// клиентский календарь мог устареть, и два арендатора могут претендовать
// на один диапазон одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: renter=%d, vehicle=%d, range=%s..%s",
		req.RenterID, req.VehicleID, req.StartDate, req.EndDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация диапазона дат
	if err := validateDateRange(req.StartDate, req.EndDate, now); err != nil {
		uc.logger.Warn("CreateBooking: date range validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем автомобиль
	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CreateBooking: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateBooking: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 5. Автомобиль должен быть доступен для аренды
	if !vehicle.Available {
		uc.logger.Warn("CreateBooking: vehicle id=%d is not available", req.VehicleID)
		return nil, ErrVehicleUnavailable
	}

	// 6. Хост не может арендовать собственный автомобиль
	if vehicle.HostID == req.RenterID {
		uc.logger.Warn("CreateBooking: renter=%d owns vehicle=%d", req.RenterID, req.VehicleID)
		return nil, ErrOwnVehicle
	}

	// 7. Считаем стоимость: дневная ставка x количество дней (включительно)
	rentalRange := domain.DateRange{StartDate: req.StartDate, EndDate: req.EndDate}
	totalAmount := vehicle.DailyRate * float64(rentalRange.Days())

	// Переменная для хранения результата
	var result *domain.Booking

	// 8. Проверка занятости и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Блокирующие бронирования, пересекающие запрошенный период (FOR UPDATE)
		filter := domain.VehicleBookingsFilter{
			VehicleID:    req.VehicleID,
			StartDate:    ptr.Ptr(req.StartDate),
			EndDate:      ptr.Ptr(req.EndDate),
			BlockingOnly: true,
		}

		bookings, err := uc.bookingRepo.GetByVehicleWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocking bookings: %v", err)
			return fmt.Errorf("%w: failed to get blocking bookings: %v", ErrInternal, err)
		}

		// 8.2. Запрошенный закрытый диапазон не должен пересекать ни один
		// блокирующий интервал (граничные дни интервалов тоже заняты)
		for _, r := range availability.BlockedRanges(bookings) {
			if r.Overlaps(rentalRange) {
				uc.logger.Warn("CreateBooking: range %s..%s overlaps booking %s..%s",
					req.StartDate, req.EndDate, r.StartDate, r.EndDate)
				return ErrDatesNotAvailable
			}
		}

		// 8.3. Создаем бронирование с денормализацией данных автомобиля
		booking := &domain.Booking{
			Reference: uuid.NewString(),
			VehicleID: req.VehicleID,
			RenterID:  req.RenterID,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Status:    domain.StatusPending,

			PickupLocation:  pickupOrDefault(req.PickupLocation, vehicle.Location),
			DropoffLocation: pickupOrDefault(req.DropoffLocation, vehicle.Location),
			TotalAmount:     totalAmount,
			Currency:        currencyOrDefault(vehicle.Currency),
			PaymentMethod:   req.PaymentMethod,

			// Денормализация данных автомобиля
			VehicleMake:  vehicle.Make,
			VehicleModel: vehicle.Model,
			VehicleYear:  vehicle.Year,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s total=%.2f %s",
		result.ID, result.Reference, result.TotalAmount, result.Currency)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		VehicleID:       result.VehicleID,
		RenterID:        result.RenterID,
		StartDate:       result.StartDate,
		EndDate:         result.EndDate,
		Status:          string(result.Status),
		PickupLocation:  result.PickupLocation,
		DropoffLocation: result.DropoffLocation,
		TotalAmount:     result.TotalAmount,
		Currency:        result.Currency,
		PaymentMethod:   result.PaymentMethod,
		VehicleMake:     result.VehicleMake,
		VehicleModel:    result.VehicleModel,
		VehicleYear:     result.VehicleYear,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// pickupOrDefault возвращает локацию автомобиля, если место не указано
func pickupOrDefault(location, vehicleLocation string) string {
	if location == "" {
		return vehicleLocation
	}
	return location
}

// currencyOrDefault возвращает валюту по умолчанию, если у автомобиля она не задана
func currencyOrDefault(currency string) string {
	if currency == "" {
		return domain.DefaultCurrency
	}
	return currency
}

package get_unavailable_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/voom-app/VOOM-RentalService/internal/availability"
	"github.com/voom-app/VOOM-RentalService/internal/domain"
	vehicleRepo "github.com/voom-app/VOOM-RentalService/internal/infra/storage/vehicle"
	"github.com/voom-app/VOOM-RentalService/pkg/ptr"
	"github.com/voom-app/VOOM-RentalService/pkg/types"
)

// UseCase use case для получения недоступных дат автомобиля.
// Проекция блокирующих бронирований в интервалы занятости для
// календаря выбора дат на клиенте.
type UseCase struct {
	bookingRepo  BookingRepository
	vehicleRepo  VehicleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		vehicleRepo:  vehicleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения недоступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetUnavailableDates: vehicle=%d, horizon=%d", req.VehicleID, req.HorizonDays)

	// 1. Валидация входных данных
	if req.VehicleID <= 0 {
		uc.logger.Warn("GetUnavailableDates: invalid vehicle id=%d", req.VehicleID)
		return nil, fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	horizonDays := req.HorizonDays
	if horizonDays <= 0 || horizonDays > domain.MaxAdvanceBookingDays {
		horizonDays = domain.MaxAdvanceBookingDays
	}

	// 2. Проверяем существование автомобиля
	if _, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("GetUnavailableDates: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("GetUnavailableDates: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 3. Рассматриваемый период: от сегодня до горизонта бронирования
	today := types.Today(uc.timeProvider.Now())
	window := domain.DateRange{
		StartDate: today,
		EndDate:   today.AddDays(horizonDays),
	}

	// 4. Блокирующие бронирования, пересекающие период
	filter := domain.VehicleBookingsFilter{
		VehicleID:    req.VehicleID,
		StartDate:    ptr.Ptr(window.StartDate),
		EndDate:      ptr.Ptr(window.EndDate),
		BlockingOnly: true,
	}

	bookings, err := uc.bookingRepo.GetByVehicleWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetUnavailableDates: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Проецируем в интервалы занятости, обрезаем периодом и сливаем
	blocked := availability.BlockedRanges(bookings)
	merged := mergeRanges(clampRanges(blocked, window))

	ranges := make([]DateRange, len(merged))
	for i, r := range merged {
		ranges[i] = DateRange{StartDate: r.StartDate, EndDate: r.EndDate}
	}

	uc.logger.Info("GetUnavailableDates: vehicle=%d has %d unavailable ranges in %s..%s",
		req.VehicleID, len(ranges), window.StartDate, window.EndDate)

	return &Response{
		VehicleID: req.VehicleID,
		From:      window.StartDate,
		To:        window.EndDate,
		Ranges:    ranges,
	}, nil
}

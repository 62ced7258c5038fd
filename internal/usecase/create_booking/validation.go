package create_booking

import (
	"fmt"
	"time"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	"github.com/voom-app/VOOM-RentalService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RenterID <= 0 {
		return fmt.Errorf("%w: renterID must be positive", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	// Проверяем, что обе даты заданы
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if len(req.PickupLocation) > domain.MaxLocationLength {
		return fmt.Errorf("%w: pickupLocation is too long", ErrInvalidInput)
	}
	if len(req.DropoffLocation) > domain.MaxLocationLength {
		return fmt.Errorf("%w: dropoffLocation is too long", ErrInvalidInput)
	}

	return nil
}

// validateDateRange проверяет, что диапазон дат подходит для бронирования.
// Конец раньше начала недопустим; равенство допустимо (аренда на один день).
func validateDateRange(startDate, endDate types.Date, now time.Time) error {
	today := types.Today(now)

	// Ретроактивные бронирования запрещены
	if startDate.Before(today) {
		return fmt.Errorf("%w: start date is in the past", ErrInvalidDateRange)
	}

	if endDate.Before(startDate) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidDateRange)
	}

	rentalRange := domain.DateRange{StartDate: startDate, EndDate: endDate}
	if rentalRange.Days() > domain.MaxRentalDays {
		return fmt.Errorf("%w: rental is longer than %d days", ErrInvalidDateRange, domain.MaxRentalDays)
	}

	// Ограничиваем горизонт бронирования
	maxStart := today.AddDays(domain.MaxAdvanceBookingDays)
	if startDate.After(maxStart) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrInvalidDateRange, domain.MaxAdvanceBookingDays)
	}

	return nil
}

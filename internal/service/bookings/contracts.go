package bookings

import (
	"context"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByRenterID(ctx context.Context, renterID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByVehicleWithFilter(ctx context.Context, filter domain.VehicleBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

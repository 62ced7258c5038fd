package vehicles

import (
	"context"
	"time"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	GetByHostID(ctx context.Context, hostID int64) ([]*domain.Vehicle, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByVehicleWithFilter(ctx context.Context, filter domain.VehicleBookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

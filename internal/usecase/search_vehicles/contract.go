package search_vehicles

import (
	"context"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	List(ctx context.Context, filter *domain.VehicleFilter) ([]*domain.Vehicle, error)
}

// SearchCache интерфейс кэша результатов поиска
type SearchCache interface {
	GetResults(ctx context.Context, filter *domain.VehicleFilter) ([]*domain.Vehicle, error)
	SetResults(ctx context.Context, filter *domain.VehicleFilter, vehicles []*domain.Vehicle) error
	SaveLastFilters(ctx context.Context, userID int64, filter *domain.VehicleFilter) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

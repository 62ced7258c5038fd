package search_vehicles

import (
	"context"

	searchVehicles "github.com/voom-app/VOOM-RentalService/internal/usecase/search_vehicles"
)

type SearchVehiclesUseCase interface {
	Execute(ctx context.Context, req *searchVehicles.Request) (*searchVehicles.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

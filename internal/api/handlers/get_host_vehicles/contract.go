package get_host_vehicles

import (
	"context"

	"github.com/voom-app/VOOM-RentalService/internal/service/vehicles/models"
)

type VehicleService interface {
	GetByHostID(ctx context.Context, hostID int64) (*models.VehicleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_vehicle_availability

import (
	"context"

	"github.com/voom-app/VOOM-RentalService/internal/service/vehicles/models"
)

type VehicleService interface {
	SetAvailability(ctx context.Context, vehicleID int64, req *models.SetAvailabilityRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

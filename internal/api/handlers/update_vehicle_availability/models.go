package update_vehicle_availability

import (
	"github.com/voom-app/VOOM-RentalService/internal/service/vehicles/models"
)

// SetAvailabilityRequest HTTP request model
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SetAvailabilityRequest) ToServiceRequest(userID int64) *models.SetAvailabilityRequest {
	return &models.SetAvailabilityRequest{
		UserID:    userID,
		Available: r.Available,
	}
}

package update_booking_status

import (
	"github.com/voom-app/VOOM-RentalService/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // "in_progress" или "completed"
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID: userID,
		Status: r.Status,
	}
}

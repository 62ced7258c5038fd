package create_vehicle

import (
	"github.com/voom-app/VOOM-RentalService/internal/service/vehicles/models"
)

// CreateVehicleRequest HTTP request model
type CreateVehicleRequest struct {
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	DailyRate    float64  `json:"dailyRate"`
	Currency     string   `json:"currency,omitempty"`
	Location     string   `json:"location"`
	Features     []string `json:"features,omitempty"`
	Category     string   `json:"category"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuelType"`
	Seats        int      `json:"seats"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateVehicleRequest) ToServiceRequest(hostID int64) *models.CreateVehicleRequest {
	return &models.CreateVehicleRequest{
		HostID:       hostID,
		Make:         r.Make,
		Model:        r.Model,
		Year:         r.Year,
		DailyRate:    r.DailyRate,
		Currency:     r.Currency,
		Location:     r.Location,
		Features:     r.Features,
		Category:     r.Category,
		Transmission: r.Transmission,
		FuelType:     r.FuelType,
		Seats:        r.Seats,
	}
}

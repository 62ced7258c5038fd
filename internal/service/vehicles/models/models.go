package models

import (
	"time"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
)

// Request модели

// CreateVehicleRequest запрос на создание объявления об автомобиле
type CreateVehicleRequest struct {
	HostID       int64    `json:"hostId"`
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

// ToDomainVehicle конвертирует request в domain модель.
// Новое объявление сразу доступно для бронирования
func (r *CreateVehicleRequest) ToDomainVehicle() *domain.Vehicle {
	currency := r.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	return &domain.Vehicle{
		HostID:       r.HostID,
		Make:         r.Make,
		Model:        r.Model,
		Year:         r.Year,
		DailyRate:    r.DailyRate,
		Currency:     currency,
		Location:     r.Location,
		Available:    true,
		Features:     r.Features,
		Category:     r.Category,
		Transmission: r.Transmission,
		FuelType:     r.FuelType,
		Seats:        r.Seats,
	}
}

// SetAvailabilityRequest запрос на включение/выключение объявления
type SetAvailabilityRequest struct {
	UserID    int64 `json:"userId"`
	Available bool  `json:"available"`
}

// Response модели

// VehicleResponse ответ с данными автомобиля
type VehicleResponse struct {
	ID           int64    `json:"id"`
	HostID       int64    `json:"hostId"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	DailyRate    float64  `json:"dailyRate"`
	Currency     string   `json:"currency"`
	Location     string   `json:"location"`
	Rating       *float64 `json:"rating,omitempty"`
	RatingCount  int      `json:"ratingCount"`
	Available    bool     `json:"available"`
	Features     []string `json:"features"`
	Category     string   `json:"category"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuelType"`
	Seats        int      `json:"seats"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VehicleListResponse ответ со списком автомобилей
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Total    int               `json:"total"`
}

// Методы конвертации

// FromDomainVehicle конвертирует domain модель в DTO
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	if v == nil {
		return nil
	}

	features := v.Features
	if features == nil {
		features = []string{}
	}

	return &VehicleResponse{
		ID:           v.ID,
		HostID:       v.HostID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		DailyRate:    v.DailyRate,
		Currency:     v.Currency,
		Location:     v.Location,
		Rating:       v.Rating,
		RatingCount:  v.RatingCount,
		Available:    v.Available,
		Features:     features,
		Category:     v.Category,
		Transmission: v.Transmission,
		FuelType:     v.FuelType,
		Seats:        v.Seats,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// FromDomainVehicleList конвертирует список domain моделей в DTO
func FromDomainVehicleList(vehicles []*domain.Vehicle) *VehicleListResponse {
	if vehicles == nil {
		return &VehicleListResponse{
			Vehicles: []VehicleResponse{},
		}
	}

	resp := &VehicleListResponse{
		Vehicles: make([]VehicleResponse, len(vehicles)),
		Total:    len(vehicles),
	}

	for i, vehicle := range vehicles {
		if vehicleResp := FromDomainVehicle(vehicle); vehicleResp != nil {
			resp.Vehicles[i] = *vehicleResp
		}
	}

	return resp
}

package create_booking

import (
	"time"

	createBooking "github.com/voom-app/VOOM-RentalService/internal/usecase/create_booking"
	"github.com/voom-app/VOOM-RentalService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VehicleID       int64   `json:"vehicleId"`
	StartDate       string  `json:"startDate"` // "2026-09-15"
	EndDate         string  `json:"endDate"`   // "2026-09-18"
	PickupLocation  string  `json:"pickupLocation,omitempty"`
	DropoffLocation string  `json:"dropoffLocation,omitempty"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"reference"`
	VehicleID       int64   `json:"vehicleId"`
	RenterID        int64   `json:"renterId"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Status          string  `json:"status"`
	PickupLocation  string  `json:"pickupLocation"`
	DropoffLocation string  `json:"dropoffLocation"`
	TotalAmount     float64 `json:"totalAmount"`
	Currency        string  `json:"currency"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`
	VehicleMake     string  `json:"vehicleMake"`
	VehicleModel    string  `json:"vehicleModel"`
	VehicleYear     int     `json:"vehicleYear"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(renterID int64) (*createBooking.Request, error) {
	// Парсим даты аренды
	startDate, err := types.NewDateFromString(r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := types.NewDateFromString(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RenterID:        renterID,
		VehicleID:       r.VehicleID,
		StartDate:       startDate,
		EndDate:         endDate,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		PaymentMethod:   r.PaymentMethod,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		VehicleID:       resp.VehicleID,
		RenterID:        resp.RenterID,
		StartDate:       resp.StartDate.String(),
		EndDate:         resp.EndDate.String(),
		Status:          resp.Status,
		PickupLocation:  resp.PickupLocation,
		DropoffLocation: resp.DropoffLocation,
		TotalAmount:     resp.TotalAmount,
		Currency:        resp.Currency,
		PaymentMethod:   resp.PaymentMethod,
		VehicleMake:     resp.VehicleMake,
		VehicleModel:    resp.VehicleModel,
		VehicleYear:     resp.VehicleYear,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

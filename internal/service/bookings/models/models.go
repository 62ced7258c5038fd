package models

import (
	"errors"
	"time"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	"github.com/voom-app/VOOM-RentalService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на перевод бронирования в следующий статус
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"` // "in_progress" или "completed"
}

// GetRenterBookingsRequest запрос на получение бронирований арендатора
type GetRenterBookingsRequest struct {
	RenterID int64   `json:"renterId"`
	Status   *string `json:"status,omitempty"`
}

// GetVehicleBookingsRequest запрос на получение бронирований автомобиля
type GetVehicleBookingsRequest struct {
	UserID       int64       `json:"userId"`
	VehicleID    int64       `json:"vehicleId"`
	StartDate    *types.Date `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate      *types.Date `json:"endDate,omitempty"`   // Конец периода (опционально)
	Status       *string     `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	BlockingOnly bool        `json:"blockingOnly,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetVehicleBookingsRequest) ToDomainFilter() (domain.VehicleBookingsFilter, error) {
	filter := domain.VehicleBookingsFilter{
		VehicleID:    r.VehicleID,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		BlockingOnly: r.BlockingOnly,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	VehicleID int64  `json:"vehicleId"`
	RenterID  int64  `json:"renterId"`
	StartDate string `json:"startDate"` // "2026-09-15"
	EndDate   string `json:"endDate"`   // "2026-09-18"
	Status    string `json:"status"`

	PickupLocation  string  `json:"pickupLocation"`
	DropoffLocation string  `json:"dropoffLocation"`
	TotalAmount     float64 `json:"totalAmount"`
	Currency        string  `json:"currency"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`

	// Денормализованные данные автомобиля
	VehicleMake  string `json:"vehicleMake"`
	VehicleModel string `json:"vehicleModel"`
	VehicleYear  int    `json:"vehicleYear"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		VehicleID:          b.VehicleID,
		RenterID:           b.RenterID,
		StartDate:          b.StartDate.String(),
		EndDate:            b.EndDate.String(),
		Status:             string(b.Status),
		PickupLocation:     b.PickupLocation,
		DropoffLocation:    b.DropoffLocation,
		TotalAmount:        b.TotalAmount,
		Currency:           b.Currency,
		PaymentMethod:      b.PaymentMethod,
		VehicleMake:        b.VehicleMake,
		VehicleModel:       b.VehicleModel,
		VehicleYear:        b.VehicleYear,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

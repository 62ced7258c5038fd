package domain

import (
	"time"

	"github.com/voom-app/VOOM-RentalService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// Booking represents a vehicle rental in the system
type Booking struct {
	ID        int64
	Reference string // Публичный код бронирования (uuid)
	VehicleID int64
	RenterID  int64
	StartDate types.Date
	EndDate   types.Date
	Status    BookingStatus

	PickupLocation  string
	DropoffLocation string
	TotalAmount     float64
	Currency        string
	PaymentMethod   *string

	// Denormalized vehicle data for history
	VehicleMake  string
	VehicleModel string
	VehicleYear  int

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the booking blocks its date range
// for new reservations. Pending and cancelled bookings never block.
func (b *Booking) IsBlocking() bool {
	return b.Status == StatusConfirmed ||
		b.Status == StatusInProgress ||
		b.Status == StatusCompleted
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeStarted returns true if the rental can transition to in_progress
func (b *Booking) CanBeStarted() bool {
	return b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the rental can transition to completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusInProgress
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// DateRange returns the closed rental interval of the booking
func (b *Booking) DateRange() DateRange {
	return DateRange{StartDate: b.StartDate, EndDate: b.EndDate}
}

// VehicleBookingsFilter фильтр для получения бронирований автомобиля
type VehicleBookingsFilter struct {
	VehicleID    int64          // Обязательный параметр
	StartDate    *types.Date    // Начало периода (опционально)
	EndDate      *types.Date    // Конец периода (опционально)
	Status       *BookingStatus // Фильтр по статусу (опционально)
	BlockingOnly bool           // Только блокирующие бронирования (confirmed/in_progress/completed)
}

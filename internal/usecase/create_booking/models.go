package create_booking

import (
	"time"

	"github.com/voom-app/VOOM-RentalService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RenterID        int64      // ID арендатора
	VehicleID       int64      // ID автомобиля
	StartDate       types.Date // Первый день аренды
	EndDate         types.Date // Последний день аренды (включительно)
	PickupLocation  string     // Место получения (опционально, по умолчанию локация автомобиля)
	DropoffLocation string     // Место возврата (опционально)
	PaymentMethod   *string    // Метка способа оплаты (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64      // ID созданного бронирования
	Reference string     // Публичный код бронирования
	VehicleID int64      // ID автомобиля
	RenterID  int64      // ID арендатора
	StartDate types.Date // Первый день аренды
	EndDate   types.Date // Последний день аренды
	Status    string     // Статус бронирования

	PickupLocation  string  // Место получения
	DropoffLocation string  // Место возврата
	TotalAmount     float64 // Полная стоимость (дневная ставка x количество дней)
	Currency        string  // Валюта
	PaymentMethod   *string // Способ оплаты

	// Денормализованные данные автомобиля
	VehicleMake  string
	VehicleModel string
	VehicleYear  int

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

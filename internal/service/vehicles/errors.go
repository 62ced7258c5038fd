package vehicles

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrHasActiveBookings возвращается при попытке удалить автомобиль
	// с предстоящими или текущими бронированиями
	ErrHasActiveBookings = errors.New("vehicle has active bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

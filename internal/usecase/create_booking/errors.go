package create_booking

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("create_booking: vehicle not found")

	// ErrVehicleUnavailable возвращается, когда автомобиль снят с аренды хостом
	ErrVehicleUnavailable = errors.New("create_booking: vehicle is not available for rent")

	// ErrOwnVehicle возвращается при попытке арендовать собственный автомобиль
	ErrOwnVehicle = errors.New("create_booking: cannot book own vehicle")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	// (прошлое, конец раньше начала, слишком длинная аренда)
	ErrInvalidDateRange = errors.New("create_booking: invalid date range")

	// ErrDatesNotAvailable возвращается, когда запрошенный диапазон
	// пересекается с существующим блокирующим бронированием
	ErrDatesNotAvailable = errors.New("create_booking: dates are not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

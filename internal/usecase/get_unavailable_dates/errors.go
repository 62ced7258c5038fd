package get_unavailable_dates

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("get_unavailable_dates: vehicle not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_unavailable_dates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_unavailable_dates: internal error")
)

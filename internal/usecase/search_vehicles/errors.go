package search_vehicles

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах поиска
	ErrInvalidInput = errors.New("search_vehicles: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_vehicles: internal error")
)

package get_unavailable_dates

import "github.com/voom-app/VOOM-RentalService/pkg/types"

// Request модель запроса на получение недоступных дат автомобиля
type Request struct {
	VehicleID int64 // ID автомобиля
	// Горизонт в днях от сегодняшнего дня; 0 = MaxAdvanceBookingDays
	HorizonDays int
}

// Response модель ответа со списком интервалов недоступности
type Response struct {
	VehicleID int64       // ID автомобиля
	From      types.Date  // Начало рассмотренного периода (сегодня)
	To        types.Date  // Конец рассмотренного периода
	Ranges    []DateRange // Интервалы недоступности (отсортированы, слиты)
}

// DateRange закрытый интервал недоступных дат
type DateRange struct {
	StartDate types.Date // Первый занятый день
	EndDate   types.Date // Последний занятый день
}

package create_booking

import (
	"errors"
	"net/http"

	"github.com/voom-app/VOOM-RentalService/internal/api/handlers"
	"github.com/voom-app/VOOM-RentalService/internal/api/middleware"
	createBooking "github.com/voom-app/VOOM-RentalService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgVehicleNotFound    = "автомобиль не найден"
	msgVehicleUnavailable = "автомобиль недоступен для бронирования"
	msgOwnVehicle         = "нельзя забронировать собственный автомобиль"
	msgInvalidDateRange   = "некорректный диапазон дат аренды"
	msgDatesNotAvailable  = "выбранные даты уже заняты"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	renterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(renterID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrDatesNotAvailable):
			h.logger.Warn("POST /bookings - Dates not available: renter_id=%d, vehicle_id=%d", renterID, req.VehicleID)
			handlers.RespondError(w, http.StatusConflict, msgDatesNotAvailable)

		case errors.Is(err, createBooking.ErrVehicleNotFound):
			h.logger.Warn("POST /bookings - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createBooking.ErrVehicleUnavailable):
			h.logger.Warn("POST /bookings - Vehicle unavailable: renter_id=%d, vehicle_id=%d", renterID, req.VehicleID)
			handlers.RespondError(w, http.StatusConflict, msgVehicleUnavailable)

		case errors.Is(err, createBooking.ErrOwnVehicle):
			h.logger.Warn("POST /bookings - Renter owns the vehicle: renter_id=%d, vehicle_id=%d", renterID, req.VehicleID)
			handlers.RespondForbidden(w, msgOwnVehicle)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: renter_id=%d, vehicle_id=%d", renterID, req.VehicleID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: renter_id=%d, vehicle_id=%d, error=%v", renterID, req.VehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: renter_id=%d, vehicle_id=%d, error=%v",
				renterID, req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, renter_id=%d, vehicle_id=%d",
		result.ID, renterID, req.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

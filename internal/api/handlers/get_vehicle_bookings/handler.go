package get_vehicle_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/voom-app/VOOM-RentalService/internal/api/handlers"
	"github.com/voom-app/VOOM-RentalService/internal/api/middleware"
	"github.com/voom-app/VOOM-RentalService/internal/service/bookings"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgInvalidParams    = "некорректные параметры запроса"
	msgVehicleNotFound  = "автомобиль не найден"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/bookings
// Query params: startDate, endDate, status, blockingOnly (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем vehicleId из URL
	vars := mux.Vars(r)
	vehicleIDStr := vars["vehicleId"]

	vehicleID, err := strconv.ParseInt(vehicleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/bookings - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /vehicles/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем опциональные query параметры
	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		vehicleID,
		userID,
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("status"),
		query.Get("blockingOnly"),
	)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем бронирования автомобиля (сервис сам проверит права владельца)
	result, err := h.service.GetVehicleBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{id}/bookings - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /vehicles/{id}/bookings - Access denied: vehicle_id=%d, user_id=%d",
				vehicleID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{id}/bookings - Invalid filter: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /vehicles/{id}/bookings - Failed to get bookings: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id}/bookings - Bookings retrieved successfully: vehicle_id=%d, count=%d",
		vehicleID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}

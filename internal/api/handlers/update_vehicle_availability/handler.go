package update_vehicle_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/voom-app/VOOM-RentalService/internal/api/handlers"
	"github.com/voom-app/VOOM-RentalService/internal/api/middleware"
	"github.com/voom-app/VOOM-RentalService/internal/service/vehicles"
)

const (
	msgInvalidVehicleID   = "некорректный ID автомобиля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "автомобиль не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/vehicles/{vehicleId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем vehicleId из URL
	vars := mux.Vars(r)
	vehicleIDStr := vars["vehicleId"]

	vehicleID, err := strconv.ParseInt(vehicleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /vehicles/{id}/availability - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /vehicles/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /vehicles/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем доступность (сервис проверит права владельца)
	err = h.service.SetAvailability(r.Context(), vehicleID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("PATCH /vehicles/{id}/availability - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, vehicles.ErrAccessDenied):
			h.logger.Warn("PATCH /vehicles/{id}/availability - Access denied: vehicle_id=%d, user_id=%d",
				vehicleID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /vehicles/{id}/availability - Failed to update: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /vehicles/{id}/availability - Updated successfully: vehicle_id=%d, available=%t, user_id=%d",
		vehicleID, req.Available, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

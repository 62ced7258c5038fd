package delete_vehicle

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
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "автомобиль не найден"
	msgForbidden        = "доступ запрещен"
	msgHasBookings      = "у автомобиля есть активные бронирования"
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

// Handle DELETE /api/v1/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем vehicleId из URL
	vars := mux.Vars(r)
	vehicleIDStr := vars["vehicleId"]

	vehicleID, err := strconv.ParseInt(vehicleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /vehicles/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Удаляем объявление (сервис проверит права владельца и бронирования)
	err = h.service.Delete(r.Context(), vehicleID, userID)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("DELETE /vehicles/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, vehicles.ErrAccessDenied):
			h.logger.Warn("DELETE /vehicles/{id} - Access denied: vehicle_id=%d, user_id=%d", vehicleID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, vehicles.ErrHasActiveBookings):
			h.logger.Warn("DELETE /vehicles/{id} - Vehicle has active bookings: vehicle_id=%d", vehicleID)
			handlers.RespondError(w, http.StatusConflict, msgHasBookings)

		default:
			h.logger.Error("DELETE /vehicles/{id} - Failed to delete vehicle: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /vehicles/{id} - Vehicle deleted successfully: vehicle_id=%d, user_id=%d",
		vehicleID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

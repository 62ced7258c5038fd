package get_vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/voom-app/VOOM-RentalService/internal/api/handlers"
	"github.com/voom-app/VOOM-RentalService/internal/service/vehicles"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgNotFound         = "автомобиль не найден"
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

// Handle GET /api/v1/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем vehicleId из URL
	vars := mux.Vars(r)
	vehicleIDStr := vars["vehicleId"]

	vehicleID, err := strconv.ParseInt(vehicleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	// Получаем автомобиль
	vehicle, err := h.service.GetByID(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /vehicles/{id} - Failed to get vehicle: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id} - Vehicle retrieved successfully: vehicle_id=%d", vehicleID)
	handlers.RespondJSON(w, http.StatusOK, vehicle)
}

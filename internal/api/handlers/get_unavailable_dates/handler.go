package get_unavailable_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/voom-app/VOOM-RentalService/internal/api/handlers"
	getUnavailableDates "github.com/voom-app/VOOM-RentalService/internal/usecase/get_unavailable_dates"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgInvalidHorizon   = "некорректное значение horizonDays"
	msgVehicleNotFound  = "автомобиль не найден"
)

type Handler struct {
	useCase GetUnavailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetUnavailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/unavailable-dates
// Query params: horizonDays (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем vehicleId из URL
	vars := mux.Vars(r)
	vehicleIDStr := vars["vehicleId"]

	vehicleID, err := strconv.ParseInt(vehicleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/unavailable-dates - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	// Парсим horizonDays если указан (0 = горизонт по умолчанию)
	horizonDays := 0
	if horizonStr := r.URL.Query().Get("horizonDays"); horizonStr != "" {
		horizonDays, err = strconv.Atoi(horizonStr)
		if err != nil || horizonDays < 0 {
			h.logger.Warn("GET /vehicles/{id}/unavailable-dates - Invalid horizonDays: %s", horizonStr)
			handlers.RespondBadRequest(w, msgInvalidHorizon)
			return
		}
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getUnavailableDates.Request{
		VehicleID:   vehicleID,
		HorizonDays: horizonDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, getUnavailableDates.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{id}/unavailable-dates - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, getUnavailableDates.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{id}/unavailable-dates - Invalid input: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidVehicleID)

		default:
			h.logger.Error("GET /vehicles/{id}/unavailable-dates - Failed to get dates: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id}/unavailable-dates - Retrieved successfully: vehicle_id=%d, ranges=%d",
		vehicleID, len(result.Ranges))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

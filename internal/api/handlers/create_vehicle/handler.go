package create_vehicle

import (
	"errors"
	"net/http"

	"github.com/voom-app/VOOM-RentalService/internal/api/handlers"
	"github.com/voom-app/VOOM-RentalService/internal/api/middleware"
	"github.com/voom-app/VOOM-RentalService/internal/service/vehicles"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные объявления"
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

// Handle POST /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	hostID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /vehicles - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем объявление
	vehicle, err := h.service.Create(r.Context(), req.ToServiceRequest(hostID))
	if err != nil {
		if errors.Is(err, vehicles.ErrInvalidInput) {
			h.logger.Warn("POST /vehicles - Invalid input: host_id=%d, error=%v", hostID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /vehicles - Failed to create vehicle: host_id=%d, error=%v", hostID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created successfully: vehicle_id=%d, host_id=%d", vehicle.ID, hostID)
	handlers.RespondJSON(w, http.StatusCreated, vehicle)
}

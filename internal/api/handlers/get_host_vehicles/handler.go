package get_host_vehicles

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/voom-app/VOOM-RentalService/internal/api/handlers"
	"github.com/voom-app/VOOM-RentalService/internal/api/middleware"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/users/{userId}/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/vehicles - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Свои объявления видит только сам владелец
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/vehicles - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if authUserID != userID {
		h.logger.Warn("GET /users/{userId}/vehicles - Access denied: path_user_id=%d, auth_user_id=%d",
			userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Получаем объявления владельца
	result, err := h.service.GetByHostID(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{userId}/vehicles - Failed to get vehicles: user_id=%d, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/vehicles - Vehicles retrieved successfully: user_id=%d, count=%d",
		userID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

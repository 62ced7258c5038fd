package search_vehicles

import (
	"errors"
	"net/http"

	"github.com/voom-app/VOOM-RentalService/internal/api/handlers"
	"github.com/voom-app/VOOM-RentalService/internal/api/middleware"
	searchVehicles "github.com/voom-app/VOOM-RentalService/internal/usecase/search_vehicles"
)

const (
	msgInvalidParams = "некорректные параметры поиска"
)

type Handler struct {
	useCase SearchVehiclesUseCase
	logger  Logger
}

func NewHandler(useCase SearchVehiclesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles
// Query params: category, makes, availableOnly, priceMin, priceMax, year,
// minRating, transmission, fuelType, seats, features, sort (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Собираем фильтр из query параметров
	filter, err := ToFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /vehicles - Invalid search parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Маршрут публичный: пользователь опционален, нужен только
	// для запоминания последнего фильтра
	userID := middleware.OptionalUserID(r)

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &searchVehicles.Request{
		UserID: userID,
		Filter: filter,
	})
	if err != nil {
		if errors.Is(err, searchVehicles.ErrInvalidInput) {
			h.logger.Warn("GET /vehicles - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /vehicles - Failed to search vehicles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vehicles - Search completed: count=%d, from_cache=%t", result.Total, result.FromCache)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

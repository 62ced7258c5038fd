package search_vehicles

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	"github.com/voom-app/VOOM-RentalService/internal/service/vehicles/models"
	searchVehicles "github.com/voom-app/VOOM-RentalService/internal/usecase/search_vehicles"
)

// ToFilter собирает domain фильтр каталога из query параметров.
// Наборы (makes, features) передаются списком через запятую
func ToFilter(query url.Values) (*domain.VehicleFilter, error) {
	filter := &domain.VehicleFilter{
		Category: query.Get("category"),
		Makes:    splitList(query.Get("makes")),
		Features: splitList(query.Get("features")),
		Sort:     domain.SortKey(query.Get("sort")),
	}

	if v := query.Get("availableOnly"); v != "" {
		availableOnly, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid availableOnly value: %w", err)
		}
		filter.AvailableOnly = availableOnly
	}

	if v := query.Get("priceMin"); v != "" {
		priceMin, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid priceMin value: %w", err)
		}
		filter.PriceMin = &priceMin
	}

	if v := query.Get("priceMax"); v != "" {
		priceMax, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid priceMax value: %w", err)
		}
		filter.PriceMax = &priceMax
	}

	if v := query.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid year value: %w", err)
		}
		filter.Year = &year
	}

	if v := query.Get("minRating"); v != "" {
		minRating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid minRating value: %w", err)
		}
		filter.MinRating = &minRating
	}

	if v := query.Get("transmission"); v != "" {
		filter.Transmission = &v
	}

	if v := query.Get("fuelType"); v != "" {
		filter.FuelType = &v
	}

	if v := query.Get("seats"); v != "" {
		seats, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid seats value: %w", err)
		}
		filter.Seats = &seats
	}

	return filter, nil
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Vehicles []models.VehicleResponse `json:"vehicles"`
	Total    int                      `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchVehicles.Response) *SearchResponse {
	list := models.FromDomainVehicleList(resp.Vehicles)
	return &SearchResponse{
		Vehicles: list.Vehicles,
		Total:    resp.Total,
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

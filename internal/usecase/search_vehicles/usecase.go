package search_vehicles

import (
	"context"
	"errors"
	"fmt"

	"github.com/voom-app/VOOM-RentalService/internal/catalog"
	searchCache "github.com/voom-app/VOOM-RentalService/internal/infra/cache/search"
)

// UseCase use case для поиска автомобилей по каталогу.
// Результаты кэшируются по каноническому ключу фильтра; недоступность
// кэша деградирует до прямого чтения из БД.
type UseCase struct {
	vehicleRepo VehicleRepository
	cache       SearchCache
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(vehicleRepo VehicleRepository, cache SearchCache, logger Logger) *UseCase {
	return &UseCase{
		vehicleRepo: vehicleRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Execute выполняет use case поиска автомобилей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Filter == nil {
		return nil, fmt.Errorf("%w: filter is required", ErrInvalidInput)
	}
	if !req.Filter.Sort.IsValid() {
		uc.logger.Warn("SearchVehicles: unknown sort key %q", req.Filter.Sort)
		return nil, fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, req.Filter.Sort)
	}

	// 2. Запоминаем последний фильтр пользователя (best-effort)
	if req.UserID > 0 {
		if err := uc.cache.SaveLastFilters(ctx, req.UserID, req.Filter); err != nil {
			uc.logger.Warn("SearchVehicles: failed to save last filters for user=%d: %v", req.UserID, err)
		}
	}

	// 3. Пробуем кэш
	vehicles, err := uc.cache.GetResults(ctx, req.Filter)
	if err == nil {
		uc.logger.Info("SearchVehicles: cache hit, %d vehicles", len(vehicles))
		return &Response{Vehicles: vehicles, Total: len(vehicles), FromCache: true}, nil
	}
	if !errors.Is(err, searchCache.ErrCacheMiss) {
		// Redis недоступен - идем напрямую в БД
		uc.logger.Warn("SearchVehicles: cache unavailable: %v", err)
	}

	// 4. Читаем из БД (фильтрация и предсортировка на стороне SQL)
	vehicles, err = uc.vehicleRepo.List(ctx, req.Filter)
	if err != nil {
		uc.logger.Error("SearchVehicles: failed to list vehicles: %v", err)
		return nil, fmt.Errorf("%w: failed to list vehicles: %v", ErrInternal, err)
	}

	// 5. Итоговый порядок определяет движок каталога. ORDER BY в SQL
	// строит тот же порядок, но источником истины остаётся движок
	catalog.Sort(vehicles, req.Filter.Sort)

	// 6. Пополняем кэш (best-effort)
	if err := uc.cache.SetResults(ctx, req.Filter, vehicles); err != nil {
		uc.logger.Warn("SearchVehicles: failed to cache results: %v", err)
	}

	uc.logger.Info("SearchVehicles: found %d vehicles", len(vehicles))

	return &Response{Vehicles: vehicles, Total: len(vehicles), FromCache: false}, nil
}

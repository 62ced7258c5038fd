// Package search кэширует результаты поиска по каталогу и последние
// фильтры пользователя в redis. Промах и недоступность кэша - штатные
// исходы: поиск всегда может уйти напрямую в БД.
package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
)

const (
	resultsKeyPrefix     = "search_results:"
	lastFiltersKeyPrefix = "last_filters:"
)

// Cache кэш результатов поиска поверх redis
type Cache struct {
	rdb        *redis.Client
	resultsTTL time.Duration
	filtersTTL time.Duration
}

// NewCache создает новый кэш поиска
func NewCache(rdb *redis.Client, resultsTTL, filtersTTL time.Duration) *Cache {
	return &Cache{
		rdb:        rdb,
		resultsTTL: resultsTTL,
		filtersTTL: filtersTTL,
	}
}

// GetResults возвращает закэшированный результат поиска для фильтра
func (c *Cache) GetResults(ctx context.Context, filter *domain.VehicleFilter) ([]*domain.Vehicle, error) {
	key := resultsKeyPrefix + FilterKey(filter)

	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetResults: %v", ErrUnavailable, err)
	}

	var vehicles []*domain.Vehicle
	if err := json.Unmarshal([]byte(val), &vehicles); err != nil {
		// Битую запись считаем промахом - перечитаем из БД и перезапишем
		return nil, ErrCacheMiss
	}

	return vehicles, nil
}

// SetResults сохраняет результат поиска для фильтра
func (c *Cache) SetResults(ctx context.Context, filter *domain.VehicleFilter, vehicles []*domain.Vehicle) error {
	data, err := json.Marshal(vehicles)
	if err != nil {
		return fmt.Errorf("%w: SetResults - marshal: %v", ErrUnavailable, err)
	}

	key := resultsKeyPrefix + FilterKey(filter)
	if err := c.rdb.Set(ctx, key, data, c.resultsTTL).Err(); err != nil {
		return fmt.Errorf("%w: SetResults: %v", ErrUnavailable, err)
	}
	return nil
}

// SaveLastFilters запоминает последний фильтр пользователя
func (c *Cache) SaveLastFilters(ctx context.Context, userID int64, filter *domain.VehicleFilter) error {
	data, err := json.Marshal(filter)
	if err != nil {
		return fmt.Errorf("%w: SaveLastFilters - marshal: %v", ErrUnavailable, err)
	}

	key := fmt.Sprintf("%s%d", lastFiltersKeyPrefix, userID)
	if err := c.rdb.Set(ctx, key, data, c.filtersTTL).Err(); err != nil {
		return fmt.Errorf("%w: SaveLastFilters: %v", ErrUnavailable, err)
	}
	return nil
}

// GetLastFilters возвращает последний сохраненный фильтр пользователя
func (c *Cache) GetLastFilters(ctx context.Context, userID int64) (*domain.VehicleFilter, error) {
	key := fmt.Sprintf("%s%d", lastFiltersKeyPrefix, userID)

	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLastFilters: %v", ErrUnavailable, err)
	}

	var filter domain.VehicleFilter
	if err := json.Unmarshal([]byte(val), &filter); err != nil {
		return nil, ErrCacheMiss
	}

	return &filter, nil
}

// ClearLastFilters удаляет сохраненный фильтр пользователя
func (c *Cache) ClearLastFilters(ctx context.Context, userID int64) error {
	key := fmt.Sprintf("%s%d", lastFiltersKeyPrefix, userID)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: ClearLastFilters: %v", ErrUnavailable, err)
	}
	return nil
}

// FilterKey строит каноническое представление фильтра для ключа кэша.
// Наборы марок и фич сортируются, чтобы эквивалентные фильтры давали
// одинаковый ключ независимо от порядка элементов. Канонизация ровно
// настолько строга, насколько строг сам предикат: марки и текстовые поля
// сравниваются без учета регистра и приводятся к нижнему, фичи
// сравниваются точно и остаются как есть.
func FilterKey(f *domain.VehicleFilter) string {
	var b strings.Builder

	writePart := func(name, value string) {
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(value)
		b.WriteByte(';')
	}

	writePart("category", strings.ToLower(f.Category))
	writePart("makes", joinSorted(foldSet(f.Makes)))
	writePart("available", fmt.Sprintf("%t", f.AvailableOnly))
	if f.PriceMin != nil {
		writePart("price_min", fmt.Sprintf("%g", *f.PriceMin))
	}
	if f.PriceMax != nil {
		writePart("price_max", fmt.Sprintf("%g", *f.PriceMax))
	}
	if f.Year != nil {
		writePart("year", fmt.Sprintf("%d", *f.Year))
	}
	if f.MinRating != nil {
		writePart("min_rating", fmt.Sprintf("%g", *f.MinRating))
	}
	if f.Transmission != nil {
		writePart("transmission", strings.ToLower(*f.Transmission))
	}
	if f.FuelType != nil {
		writePart("fuel_type", strings.ToLower(*f.FuelType))
	}
	if f.Seats != nil {
		writePart("seats", fmt.Sprintf("%d", *f.Seats))
	}
	writePart("features", joinSorted(f.Features))
	writePart("sort", string(f.Sort))

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:16])
}

func joinSorted(items []string) string {
	if len(items) == 0 {
		return ""
	}
	sorted := make([]string, len(items))
	copy(sorted, items)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// foldSet приводит набор к нижнему регистру. Только для полей,
// которые предикат каталога сравнивает без учета регистра.
func foldSet(items []string) []string {
	folded := make([]string, len(items))
	for i, item := range items {
		folded[i] = strings.ToLower(item)
	}
	return folded
}

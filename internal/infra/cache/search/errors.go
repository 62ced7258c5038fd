package search

import "errors"

var (
	// ErrCacheMiss возвращается, когда ключа нет в кэше
	ErrCacheMiss = errors.New("search.cache: cache miss")

	// ErrUnavailable возвращается при недоступности redis.
	// Вызывающая сторона обязана деградировать до прямого чтения из БД.
	ErrUnavailable = errors.New("search.cache: cache unavailable")
)

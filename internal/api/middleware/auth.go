package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/voom-app/VOOM-RentalService/internal/api/handlers"
)

// UserIDHeader заголовок с ID пользователя, проставляется API-шлюзом
const UserIDHeader = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

const msgMissingUserID = "отсутствует или некорректен заголовок X-User-ID"

// Auth извлекает ID пользователя из заголовка X-User-ID и кладет его
// в контекст запроса. Запросы без валидного заголовка отклоняются
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// OptionalUserID возвращает ID пользователя из заголовка для публичных
// маршрутов: 0, если заголовок отсутствует или некорректен
func OptionalUserID(r *http.Request) int64 {
	userID, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64)
	if err != nil || userID <= 0 {
		return 0
	}
	return userID
}

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dentwise/booking-service/internal/api/handlers"
)

// HeaderUserID заголовок с идентификатором аутентифицированного пользователя.
// Заполняется API-шлюзом после проверки сессии
const HeaderUserID = "X-User-ID"

type userIDKey struct{}

// Auth проверяет наличие корректного X-User-ID и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, "отсутствует ID пользователя")
			return
		}
		if _, err := uuid.Parse(userID); err != nil {
			handlers.RespondUnauthorized(w, "некорректный ID пользователя")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok
}

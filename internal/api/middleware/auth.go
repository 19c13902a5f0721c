package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
)

// HeaderUserID заголовок с ID пользователя, выставляется шлюзом после аутентификации
const HeaderUserID = "X-User-ID"

type contextKey string

const userIDKey contextKey = "user_id"

// Auth требует заголовок X-User-ID с UUID и кладёт его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderUserID+" header")
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondUnauthorized(w, "invalid "+HeaderUserID+" header")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID кладёт ID пользователя в контекст
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID достаёт ID пользователя из контекста
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
)

// AdminChecker проверка прав администратора
type AdminChecker interface {
	IsActiveAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequireAdmin пропускает только активных администраторов. Ставится после Auth.
func RequireAdmin(checker AdminChecker, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, "missing "+HeaderUserID+" header")
				return
			}

			isAdmin, err := checker.IsActiveAdmin(r.Context(), userID)
			if err != nil {
				logger.Error("%s %s - admin check failed: user_id=%s, error=%v", r.Method, r.URL.Path, userID, err)
				handlers.RespondServiceUnavailable(w, "service temporarily unavailable, please try again")
				return
			}
			if !isAdmin {
				logger.Warn("%s %s - access denied: user_id=%s", r.Method, r.URL.Path, userID)
				handlers.RespondForbidden(w, "access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

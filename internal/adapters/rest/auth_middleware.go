package rest

import (
	"context"
	"net/http"
	"strings"

	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

type contextKey string

const (
	tokenContextKey   contextKey = "auth_token"
	sessionContextKey contextKey = "auth_session"
)

// AuthMiddleware извлекает токен из заголовка Authorization, а при его
// отсутствии - из сохраненной сессии. Токен кладется в контекст как есть;
// требование его наличия решается на уровне конкретного обработчика.
func AuthMiddleware(sessions port.SessionStorePort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := bearerToken(r)
			session, err := sessions.Load(ctx)
			if err == nil && session != nil {
				ctx = context.WithValue(ctx, sessionContextKey, session)
				if token == "" {
					token = session.Token
				}
			}
			ctx = context.WithValue(ctx, tokenContextKey, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пускает дальше только пользователя с данной ролью.
// Отсутствие сессии - 401, чужая роль - 403.
func RequireRole(role string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := SessionFromContext(r.Context())
			if session == nil {
				WriteJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if session.Role != role {
				WriteJSONError(w, http.StatusForbidden, "operation not allowed for this role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// TokenFromContext возвращает токен текущего запроса; пустая строка,
// если пользователь не аутентифицирован.
func TokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(tokenContextKey).(string); ok {
		return token
	}
	return ""
}

// SessionFromContext возвращает сохраненную сессию или nil.
func SessionFromContext(ctx context.Context) *domain.Session {
	if session, ok := ctx.Value(sessionContextKey).(*domain.Session); ok {
		return session
	}
	return nil
}

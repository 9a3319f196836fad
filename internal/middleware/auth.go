package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/bookmarks/internal/service"
	"go.uber.org/zap"
)

type unauthorizedBody struct {
	Error string `json:"error"`
}

// AuthMiddleware проверяет bearer-токен до выполнения любого маршрута
type AuthMiddleware struct {
	authService *service.TokenAuthService
	logger      *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware
func NewAuthMiddleware(authService *service.TokenAuthService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// RequireToken пропускает запрос дальше только при совпадении токена с секретом.
// Иначе отвечает 401 и не вызывает следующий обработчик.
func (am *AuthMiddleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !am.authService.Authorize(r.Header.Get("Authorization")) {
			am.logger.Error("Unauthorized request to path",
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
			)
			writeUnauthorized(w, am.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	if err := json.NewEncoder(w).Encode(unauthorizedBody{Error: "Unauthorized request"}); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

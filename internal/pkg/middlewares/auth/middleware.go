package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"driver-service/internal/dto"
	"driver-service/pkg/logger"
)

const bearerPrefix = "Bearer "

// Middleware проверяет bearer-токен и кладёт driverID в контекст запроса.
// Любой отказ (нет заголовка, кривой формат, неизвестный или истёкший
// токен) даёт одинаковый 401 без уточнения причины.
func Middleware(log handlerLogger, sessions SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeUnauthorized(w, log)
				return
			}

			driverID, err := sessions.Validate(r.Context(), token)
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
				).Warn("session validation rejected")
				writeUnauthorized(w, log)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithDriverID(r.Context(), driverID)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", false
	}
	return token, true
}

func writeUnauthorized(w http.ResponseWriter, log handlerLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	resp := dto.Error{
		Error:   "unauthorized",
		Message: "Invalid or missing token",
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("failed to write unauthorized response")
	}
}

package session_delete

import (
	"encoding/json"
	"net/http"
	"strings"

	"driver-service/internal/dto"
	"driver-service/pkg/logger"
)

const bearerPrefix = "Bearer "

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

// ServeHTTP отзывает предъявленный токен. Logout идемпотентен: неизвестный,
// истёкший или отсутствующий токен всё равно даёт 200.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	if token != "" {
		if err := h.service.Logout(r.Context(), token); err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("session logout")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	resp := dto.LogoutResponse{
		Success: true,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

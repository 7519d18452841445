package session_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"driver-service/internal/dto"
	"driver-service/internal/entities"
	driverService "driver-service/internal/service/driver"
	"driver-service/internal/service/session"
	"driver-service/pkg/logger"
)

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.SessionCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "validation_failure", "Malformed request body")
		return
	}

	grant, err := h.service.Login(r.Context(), req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidPhone):
			writeError(w, h.log, http.StatusBadRequest, "validation_failure", "Invalid phone number")
		case errors.Is(err, driverService.ErrDriverNotFound):
			writeError(w, h.log, http.StatusNotFound, "not_found", "Driver not found")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("driver login")
			writeError(w, h.log, http.StatusInternalServerError, "unavailable", "Internal error")
		}
		return
	}

	resp := dto.SessionCreateResponse{
		Token:     grant.Session.Token,
		Driver:    toDriverDTO(&grant.Driver),
		ExpiresAt: grant.Session.ExpiresAt.Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDriverDTO(d *entities.Driver) dto.Driver {
	return dto.Driver{
		ID:          d.ID,
		Name:        d.Name,
		Phone:       d.Phone,
		VehicleType: d.VehicleType.String(),
		PlateNumber: d.Plate,
		Rating:      d.Rating,
		SuccessRate: d.SuccessRate,
		Status:      d.Status.String(),
		CurrentZone: d.CurrentZone,
		// мобильный клиент ждёт здесь счётчик за сегодня
		TotalDeliveries: d.DeliveriesToday,
	}
}

func writeError(w http.ResponseWriter, log handlerLogger, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := dto.Error{
		Error:   code,
		Message: message,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON error response")
	}
}

package location_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"driver-service/internal/dto"
	"driver-service/internal/entities"
	"driver-service/internal/pkg/middlewares/auth"
	"driver-service/internal/service/location"
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
	driverID := auth.DriverID(r.Context())

	var req dto.LocationReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "validation_failure", "Malformed request body")
		return
	}

	if req.Latitude == nil || req.Longitude == nil {
		writeError(w, h.log, http.StatusBadRequest, "validation_failure", "Latitude and longitude are required")
		return
	}

	timestamp, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		writeError(w, h.log, http.StatusBadRequest, "validation_failure", "Invalid timestamp format")
		return
	}

	sample := entities.LocationSample{
		DriverID:  driverID,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Timestamp: timestamp,
	}

	applied, err := h.service.Report(r.Context(), sample)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrInvalidCoordinates),
			errors.Is(err, location.ErrInvalidTimestamp):
			writeError(w, h.log, http.StatusBadRequest, "validation_failure", "Invalid location sample")
		case errors.Is(err, location.ErrDriverNotFound):
			writeError(w, h.log, http.StatusNotFound, "not_found", "Driver not found")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("report location")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	message := "Location updated"
	if !applied {
		// устаревший сэмпл не ошибка: клиент мог прислать очередь оффлайн-точек
		message = "Stale sample ignored"
	}

	resp := dto.LocationReportResponse{
		Success: true,
		Message: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
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

package stop_status_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"driver-service/internal/dto"
	"driver-service/internal/entities"
	"driver-service/internal/pkg/middlewares/auth"
	"driver-service/internal/service/stop"
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
	stopID := mux.Vars(r)["stopId"]

	var req dto.StopStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "validation_failure", "Malformed request body")
		return
	}

	proof := entities.StopProof{
		Signature:     req.Signature,
		Photo:         req.Photo,
		FailureReason: entities.FailureReasonType(req.FailureReason),
		Notes:         req.Notes,
	}

	updated, err := h.service.UpdateStatus(r.Context(), stopID, driverID, entities.StopStatusType(req.Status), proof)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp := dto.StopStatusUpdateResponse{
		ID:            updated.ID,
		Status:        updated.Status.String(),
		FailureReason: updated.FailureReason.String(),
		Notes:         updated.Notes,
		UpdatedAt:     updated.UpdatedAt.Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, stop.ErrInvalidStopID):
		writeError(w, h.log, http.StatusBadRequest, "validation_failure", "Invalid stop id")
	case errors.Is(err, stop.ErrStopNotFound):
		writeError(w, h.log, http.StatusNotFound, "not_found", "Stop not found")
	case errors.Is(err, stop.ErrNotAuthorized):
		writeError(w, h.log, http.StatusForbidden, "forbidden", "Stop belongs to another driver")
	case errors.Is(err, stop.ErrInvalidTransition):
		writeError(w, h.log, http.StatusConflict, "invalid_transition", "Stop is already in a terminal status")
	case errors.Is(err, stop.ErrConflict):
		writeError(w, h.log, http.StatusConflict, "conflict", "Stop was updated concurrently")
	case errors.Is(err, stop.ErrMissingProof):
		writeError(w, h.log, http.StatusUnprocessableEntity, "missing_proof", "Delivered requires a signature or a photo")
	case errors.Is(err, stop.ErrMissingReason):
		writeError(w, h.log, http.StatusUnprocessableEntity, "missing_reason", "Failed requires a failure reason")
	default:
		h.log.With(
			logger.NewField("error", err),
		).Error("update stop status")
		w.WriteHeader(http.StatusInternalServerError)
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

package runs_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"driver-service/internal/dto"
	"driver-service/internal/entities"
	"driver-service/internal/pkg/middlewares/auth"
	"driver-service/internal/service/run"
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

	statuses := parseStatusFilter(r.URL.Query().Get("status"))

	runs, err := h.service.ListRuns(r.Context(), driverID, statuses)
	if err != nil {
		switch {
		case errors.Is(err, run.ErrInvalidStatusFilter):
			writeError(w, h.log, http.StatusBadRequest, "validation_failure", "Invalid status filter")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("list runs")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	runDTOs := make([]dto.Run, 0, len(runs))
	for i := range runs {
		runDTOs = append(runDTOs, toRunDTO(&runs[i]))
	}

	resp := dto.RunsResponse{
		Runs:  runDTOs,
		Total: len(runDTOs),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseStatusFilter(raw string) []entities.RunStatusType {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	statuses := make([]entities.RunStatusType, 0, len(parts))
	for _, part := range parts {
		statuses = append(statuses, entities.RunStatusType(strings.TrimSpace(part)))
	}
	return statuses
}

func toRunDTO(r *entities.Run) dto.Run {
	return dto.Run{
		ID:                r.ID,
		Zone:              r.Zone,
		Date:              r.Date.Format("2006-01-02"),
		Status:            r.Status.String(),
		TotalStops:        r.TotalStops,
		CompletedStops:    r.CompletedStops,
		EstimatedDuration: r.EstimatedDurationSec,
		TotalDistance:     r.TotalDistanceKm,
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

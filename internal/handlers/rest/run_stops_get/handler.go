package run_stops_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

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
	runID := mux.Vars(r)["runId"]

	stops, err := h.service.ListStops(r.Context(), driverID, runID)
	if err != nil {
		switch {
		case errors.Is(err, run.ErrInvalidRunID):
			writeError(w, h.log, http.StatusBadRequest, "validation_failure", "Invalid run id")
		case errors.Is(err, run.ErrRunNotFound):
			writeError(w, h.log, http.StatusNotFound, "not_found", "Run not found")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("list run stops")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	stopDTOs := make([]dto.Stop, 0, len(stops))
	for i := range stops {
		stopDTOs = append(stopDTOs, toStopDTO(&stops[i]))
	}

	resp := dto.StopsResponse{
		Stops: stopDTOs,
		Total: len(stopDTOs),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toStopDTO(s *entities.Stop) dto.Stop {
	stopDTO := dto.Stop{
		ID:             s.ID,
		SequenceNumber: s.Seq,
		Status:         s.Status.String(),
		FailureReason:  s.FailureReason.String(),
		Notes:          s.Notes,
	}

	if s.Order != nil {
		stopDTO.Order = dto.Order{
			ID:          s.Order.ID,
			OrderNumber: s.Order.Number,
			Customer: dto.Customer{
				Name:  s.Order.Customer,
				Phone: s.Order.Phone,
				Email: s.Order.Email,
			},
			Address: dto.Address{
				Street:   s.Order.Address,
				Suburb:   s.Order.Suburb,
				Postcode: s.Order.Postcode,
				State:    s.Order.State,
			},
			Parcels:             s.Order.Parcels,
			ServiceLevel:        s.Order.ServiceLevel.String(),
			SpecialInstructions: s.Order.Instructions,
			CreatedAt:           s.Order.CreatedAt.Format(time.RFC3339),
		}
	}

	return stopDTO
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

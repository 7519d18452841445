package profile_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"driver-service/internal/dto"
	"driver-service/internal/pkg/middlewares/auth"
	"driver-service/internal/service/driver"
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

	driverEntity, stats, err := h.service.GetProfile(r.Context(), driverID)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get driver profile")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	resp := dto.ProfileResponse{
		Driver: dto.Driver{
			ID:              driverEntity.ID,
			Name:            driverEntity.Name,
			Phone:           driverEntity.Phone,
			VehicleType:     driverEntity.VehicleType.String(),
			PlateNumber:     driverEntity.Plate,
			Rating:          driverEntity.Rating,
			SuccessRate:     driverEntity.SuccessRate,
			Status:          driverEntity.Status.String(),
			CurrentZone:     driverEntity.CurrentZone,
			TotalDeliveries: stats.TotalDeliveries,
		},
		Stats: dto.DriverStats{
			DeliveriesToday: stats.DeliveriesToday,
			TotalDeliveries: stats.TotalDeliveries,
			SuccessRate:     stats.SuccessRate,
			ActiveOrders:    stats.ActiveOrders,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

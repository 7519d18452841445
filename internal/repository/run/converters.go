package run

import (
	"driver-service/internal/entities"
)

func ToDomain(r *RunDB) *entities.Run {
	if r == nil {
		return nil
	}

	return &entities.Run{
		ID:                   r.ID,
		DriverID:             r.DriverID,
		Date:                 r.Date,
		Zone:                 r.Zone,
		Status:               entities.RunStatusType(r.Status),
		TotalStops:           r.TotalStops,
		CompletedStops:       r.CompletedStops,
		EstimatedDurationSec: r.EstimatedDurationSec,
		TotalDistanceKm:      r.TotalDistanceKm,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func ToDomainList(runsDB []RunDB) []entities.Run {
	if len(runsDB) == 0 {
		return []entities.Run{}
	}

	result := make([]entities.Run, len(runsDB))
	for i, runDB := range runsDB {
		result[i] = *ToDomain(&runDB)
	}
	return result
}

func ToStopDomain(s *StopWithOrderDB) *entities.Stop {
	if s == nil {
		return nil
	}

	stop := &entities.Stop{
		ID:        s.ID,
		RunID:     s.RunID,
		OrderID:   s.OrderID,
		Seq:       s.Seq,
		Status:    entities.StopStatusType(s.Status),
		Notes:     deref(s.Notes),
		Version:   s.Version,
		UpdatedAt: s.UpdatedAt,
		Order: &entities.Order{
			ID:           s.OrderID,
			Number:       s.OrderNumber,
			Customer:     s.OrderCustomer,
			Email:        deref(s.OrderEmail),
			Phone:        deref(s.OrderPhone),
			Address:      s.OrderAddress,
			Suburb:       s.OrderSuburb,
			Postcode:     s.OrderPostcode,
			State:        s.OrderState,
			Parcels:      s.OrderParcels,
			ServiceLevel: entities.ServiceLevelType(s.OrderServiceLevel),
			Status:       entities.OrderStatusType(s.OrderStatus),
			Instructions: deref(s.OrderInstructions),
			CreatedAt:    s.OrderCreatedAt,
		},
	}

	if s.FailureReason != nil {
		stop.FailureReason = entities.FailureReasonType(*s.FailureReason)
	}

	return stop
}

func ToStopDomainList(stopsDB []StopWithOrderDB) []entities.Stop {
	if len(stopsDB) == 0 {
		return []entities.Stop{}
	}

	result := make([]entities.Stop, len(stopsDB))
	for i, stopDB := range stopsDB {
		result[i] = *ToStopDomain(&stopDB)
	}
	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

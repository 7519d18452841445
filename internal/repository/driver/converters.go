package driver

import (
	"driver-service/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	return &entities.Driver{
		ID:              d.ID,
		Name:            d.Name,
		Phone:           d.Phone,
		VehicleType:     entities.VehicleType(d.VehicleType),
		Plate:           d.Plate,
		Status:          entities.DriverStatusType(d.Status),
		CurrentZone:     d.CurrentZone,
		Rating:          d.Rating,
		SuccessRate:     d.SuccessRate,
		DeliveriesToday: d.DeliveriesToday,
		ActiveOrders:    d.ActiveOrders,
		LastLat:         d.LastLat,
		LastLon:         d.LastLon,
		LastSeenAt:      d.LastSeenAt,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func ToStatsDomain(s *DriverStatsDB) *entities.DriverStats {
	if s == nil {
		return nil
	}

	return &entities.DriverStats{
		DeliveriesToday: s.DeliveriesToday,
		TotalDeliveries: s.TotalDeliveries,
		SuccessRate:     s.SuccessRate,
		ActiveOrders:    s.ActiveOrders,
	}
}

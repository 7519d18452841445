package driver

import "time"

type DriverDB struct {
	ID              string
	Name            string
	Phone           string
	VehicleType     string
	Plate           string
	Status          string
	CurrentZone     string
	Rating          float64
	SuccessRate     float64
	DeliveriesToday int64
	ActiveOrders    int64
	LastLat         *float64
	LastLon         *float64
	LastSeenAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type DriverStatsDB struct {
	DeliveriesToday int64
	TotalDeliveries int64
	SuccessRate     float64
	ActiveOrders    int64
}

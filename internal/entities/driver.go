package entities

import "time"

type Driver struct {
	ID              string
	Name            string
	Phone           string
	VehicleType     VehicleType
	Plate           string
	Status          DriverStatusType
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

type DriverStatusType string

const (
	DriverAvailable DriverStatusType = "available"
	DriverOnRun     DriverStatusType = "on_run"
	DriverOffline   DriverStatusType = "offline"
)

func (t DriverStatusType) String() string {
	return string(t)
}

type VehicleType string

const (
	VehicleVan   VehicleType = "van"
	VehicleTruck VehicleType = "truck"
)

func (t VehicleType) String() string {
	return string(t)
}

// DriverStats считается из персистентного состояния orders/stops на каждый
// запрос профиля, никогда не кэшируется между запросами.
type DriverStats struct {
	DeliveriesToday int64
	TotalDeliveries int64
	SuccessRate     float64
	ActiveOrders    int64
}

// LocationSample - один отчёт о позиции водителя. Хранится только последний
// сэмпл per driver, история не ведётся.
type LocationSample struct {
	DriverID  string
	Latitude  float64
	Longitude float64
	Timestamp time.Time
}

package run

import "time"

type RunDB struct {
	ID                   string
	DriverID             string
	Date                 time.Time
	Zone                 string
	Status               string
	TotalStops           int64
	CompletedStops       int64
	EstimatedDurationSec int64
	TotalDistanceKm      float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type StopWithOrderDB struct {
	ID            string
	RunID         string
	OrderID       string
	Seq           int64
	Status        string
	FailureReason *string
	Notes         *string
	Version       int64
	UpdatedAt     time.Time

	OrderNumber       string
	OrderCustomer     string
	OrderEmail        *string
	OrderPhone        *string
	OrderAddress      string
	OrderSuburb       string
	OrderPostcode     string
	OrderState        string
	OrderParcels      int64
	OrderServiceLevel string
	OrderStatus       string
	OrderInstructions *string
	OrderCreatedAt    time.Time
}

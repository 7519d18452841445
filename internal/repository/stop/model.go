package stop

import "time"

type StopDB struct {
	ID            string
	RunID         string
	OrderID       string
	Seq           int64
	Status        string
	FailureReason *string
	Notes         *string
	Version       int64
	UpdatedAt     time.Time
}

type StopClaimDB struct {
	Stop     StopDB
	DriverID string
}

package entities

import "time"

// Order принадлежит бэк-офису; сервис водителя меняет только статус
// и proof-of-delivery поля через переход стопа.
type Order struct {
	ID           string
	Number       string
	Customer     string
	Email        string
	Phone        string
	Address      string
	Suburb       string
	Postcode     string
	State        string
	Parcels      int64
	ServiceLevel ServiceLevelType
	Status       OrderStatusType
	Instructions string
	Signature    string
	Photo        string
	DeliveredAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderAllocated OrderStatusType = "allocated"
	OrderInTransit OrderStatusType = "in_transit"
	OrderDelivered OrderStatusType = "delivered"
	OrderFailed    OrderStatusType = "failed"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type ServiceLevelType string

const (
	ServiceExpress  ServiceLevelType = "express"
	ServiceStandard ServiceLevelType = "standard"
	ServiceEconomy  ServiceLevelType = "economy"
)

func (s ServiceLevelType) String() string {
	return string(s)
}

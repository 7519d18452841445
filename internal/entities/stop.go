package entities

import "time"

// Stop - один заказ внутри рана. Sequence уникален и непрерывен с 1 в рамках
// рана и задаёт порядок объезда.
type Stop struct {
	ID            string
	RunID         string
	OrderID       string
	Seq           int64
	Status        StopStatusType
	FailureReason FailureReasonType
	Notes         string
	Version       int64
	UpdatedAt     time.Time

	// Order подтягивается join-ом при выдаче списка стопов.
	Order *Order
}

type StopStatusType string

const (
	StopPending   StopStatusType = "pending"
	StopDelivered StopStatusType = "delivered"
	StopFailed    StopStatusType = "failed"
)

func (s StopStatusType) String() string {
	return string(s)
}

// IsTerminal: из delivered и failed переходов нет.
func (s StopStatusType) IsTerminal() bool {
	return s == StopDelivered || s == StopFailed
}

type FailureReasonType string

const (
	ReasonNotHome      FailureReasonType = "notHome"
	ReasonWrongAddress FailureReasonType = "wrongAddress"
	ReasonRefused      FailureReasonType = "refused"
	ReasonDamaged      FailureReasonType = "damaged"
	ReasonAccessIssue  FailureReasonType = "accessIssue"
	ReasonOther        FailureReasonType = "other"
)

func (r FailureReasonType) String() string {
	return string(r)
}

// StopProof - доказательство доставки и/или причина отказа, передаётся
// вместе с терминальным переходом.
type StopProof struct {
	Signature     string
	Photo         string
	FailureReason FailureReasonType
	Notes         string
}

func (p StopProof) HasProof() bool {
	return p.Signature != "" || p.Photo != ""
}

// StopClaim - стоп вместе с владельцем его рана, результат блокирующего
// чтения перед терминальным переходом.
type StopClaim struct {
	Stop     Stop
	DriverID string
}

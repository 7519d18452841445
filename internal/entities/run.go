package entities

import "time"

// Run - упорядоченный набор стопов одного водителя на один операционный день.
// Статус рана производный: пересчитывается из статусов стопов при каждом
// терминальном переходе.
type Run struct {
	ID                   string
	DriverID             string
	Date                 time.Time
	Zone                 string
	Status               RunStatusType
	TotalStops           int64
	CompletedStops       int64
	EstimatedDurationSec int64
	TotalDistanceKm      float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type RunStatusType string

const (
	RunPending   RunStatusType = "pending"
	RunActive    RunStatusType = "active"
	RunCompleted RunStatusType = "completed"
)

func (s RunStatusType) String() string {
	return string(s)
}

// RunStopCounts - срез статусов стопов рана из текущего персистентного
// состояния, вход для пересчёта агрегатного статуса.
type RunStopCounts struct {
	Total     int64
	Pending   int64
	Delivered int64
	Failed    int64
}

func (c RunStopCounts) Terminal() int64 {
	return c.Delivered + c.Failed
}

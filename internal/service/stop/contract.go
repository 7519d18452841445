//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stop_test
package stop

import (
	"context"
	"time"

	"driver-service/internal/entities"
)

type Repository interface {
	GetClaimForUpdate(ctx context.Context, stopID string) (*entities.StopClaim, error)
	UpdateTerminalStatus(ctx context.Context, stopID string, fromVersion int64, status entities.StopStatusType, proof entities.StopProof, at time.Time) (*entities.Stop, error)

	ApplyOrderOutcome(ctx context.Context, orderID string, status entities.OrderStatusType, proof entities.StopProof, at time.Time) error

	GetRunStopCounts(ctx context.Context, runID string) (*entities.RunStopCounts, error)
	UpdateRunStatus(ctx context.Context, runID string, status entities.RunStatusType) error

	MarkDriverDelivered(ctx context.Context, driverID string) error
	CountActiveRunsByDriver(ctx context.Context, driverID string) (int64, error)
	UpdateDriverStatus(ctx context.Context, driverID string, status entities.DriverStatusType) error
}

type RunStatusFactory interface {
	Derive(counts entities.RunStopCounts) entities.RunStatusType
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

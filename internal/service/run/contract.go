//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=run_test
package run

import (
	"context"

	"driver-service/internal/entities"
)

type Repository interface {
	ListByDriver(ctx context.Context, driverID string, statuses []entities.RunStatusType) ([]entities.Run, error)
	GetByID(ctx context.Context, runID string) (*entities.Run, error)
	ListStopsWithOrders(ctx context.Context, runID string) ([]entities.Stop, error)
}

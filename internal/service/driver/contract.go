//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"

	"driver-service/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Driver, error)
	GetStats(ctx context.Context, id string) (*entities.DriverStats, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"
	"time"

	"driver-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, session entities.Session) error
	GetByToken(ctx context.Context, token string) (*entities.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type DriverProvider interface {
	GetByPhone(ctx context.Context, phone string) (*entities.Driver, error)
}

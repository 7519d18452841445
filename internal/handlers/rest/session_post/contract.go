//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_post_test
package session_post

import (
	"context"

	"driver-service/internal/entities"
	"driver-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Login(ctx context.Context, phone string) (*entities.SessionGrant, error)
}

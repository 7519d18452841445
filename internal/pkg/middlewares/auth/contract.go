package auth

import (
	"context"

	"driver-service/pkg/logger"
)

type SessionValidator interface {
	Validate(ctx context.Context, token string) (string, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

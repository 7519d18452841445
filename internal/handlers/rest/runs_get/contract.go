//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=runs_get_test
package runs_get

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
	ListRuns(ctx context.Context, driverID string, statuses []entities.RunStatusType) ([]entities.Run, error)
}

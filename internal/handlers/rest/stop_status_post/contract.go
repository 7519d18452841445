//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stop_status_post_test
package stop_status_post

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
	UpdateStatus(
		ctx context.Context,
		stopID, driverID string,
		newStatus entities.StopStatusType,
		proof entities.StopProof,
	) (*entities.Stop, error)
}

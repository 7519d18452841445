//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_test
package location

import (
	"context"

	"driver-service/internal/entities"
)

type Repository interface {
	// UpdateLocation перезаписывает позицию водителя, если сэмпл новее
	// сохранённого. Возвращает false, если сэмпл был отброшен как устаревший.
	UpdateLocation(ctx context.Context, sample entities.LocationSample) (bool, error)
}

package driver

import (
	"context"
	"fmt"
	"strings"

	"driver-service/internal/entities"
)

type Driver struct {
	repository Repository
}

func New(repository Repository) *Driver {
	return &Driver{
		repository: repository,
	}
}

// GetProfile возвращает профиль и счётчики. Статистика считается из
// персистентных orders/stops на каждый запрос: дашборд пишет в те же таблицы
// параллельно, кэшировать между запросами нельзя.
func (s *Driver) GetProfile(ctx context.Context, driverID string) (*entities.Driver, *entities.DriverStats, error) {
	if strings.TrimSpace(driverID) == "" {
		return nil, nil, ErrInvalidDriverID
	}

	driverEntity, err := s.repository.GetByID(ctx, driverID)
	if err != nil {
		return nil, nil, fmt.Errorf("get driver: %w", err)
	}

	stats, err := s.repository.GetStats(ctx, driverID)
	if err != nil {
		return nil, nil, fmt.Errorf("get driver stats: %w", err)
	}

	return driverEntity, stats, nil
}

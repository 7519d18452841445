package run

import (
	"context"
	"fmt"
	"strings"

	"driver-service/internal/entities"
)

type Run struct {
	repository Repository
}

func New(repository Repository) *Run {
	return &Run{
		repository: repository,
	}
}

// ListRuns возвращает раны водителя, опционально отфильтрованные по статусу.
// Порядок: run_date ASC, id ASC.
func (s *Run) ListRuns(ctx context.Context, driverID string, statuses []entities.RunStatusType) ([]entities.Run, error) {
	if strings.TrimSpace(driverID) == "" {
		return nil, ErrInvalidDriverID
	}

	for _, status := range statuses {
		if !isValidRunStatus(status) {
			return nil, fmt.Errorf("%q: %w", status, ErrInvalidStatusFilter)
		}
	}

	runs, err := s.repository.ListByDriver(ctx, driverID, statuses)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	return runs, nil
}

// ListStops возвращает стопы рана по sequence с подтянутыми заказами.
// Чужой ран неотличим от несуществующего.
func (s *Run) ListStops(ctx context.Context, driverID, runID string) ([]entities.Stop, error) {
	if strings.TrimSpace(driverID) == "" {
		return nil, ErrInvalidDriverID
	}
	if strings.TrimSpace(runID) == "" {
		return nil, ErrInvalidRunID
	}

	runEntity, err := s.repository.GetByID(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}

	if runEntity.DriverID != driverID {
		return nil, ErrRunNotFound
	}

	stops, err := s.repository.ListStopsWithOrders(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("list stops: %w", err)
	}

	return stops, nil
}

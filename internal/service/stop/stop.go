package stop

import (
	"context"
	"fmt"
	"strings"
	"time"

	"driver-service/internal/entities"
)

// Stop применяет терминальные переходы стопов:
// pending -> delivered и pending -> failed, других переходов нет.
type Stop struct {
	repository    Repository
	statusFactory RunStatusFactory
	txManager     TxManager
}

func New(repository Repository, statusFactory RunStatusFactory, txManager TxManager) *Stop {
	return &Stop{
		repository:    repository,
		statusFactory: statusFactory,
		txManager:     txManager,
	}
}

// UpdateStatus проводит стоп в терминальный статус и атомарно пересчитывает
// агрегатный статус родительского рана. Статус стопа перечитывается под
// блокировкой непосредственно перед записью: при конкурентных переходах
// побеждает первый, второй получает ErrInvalidTransition.
func (s *Stop) UpdateStatus(
	ctx context.Context,
	stopID, driverID string,
	newStatus entities.StopStatusType,
	proof entities.StopProof,
) (*entities.Stop, error) {
	if strings.TrimSpace(stopID) == "" {
		return nil, ErrInvalidStopID
	}

	if !isTerminalTarget(newStatus) {
		return nil, fmt.Errorf("%q is not a terminal status: %w", newStatus, ErrInvalidTransition)
	}

	switch newStatus {
	case entities.StopDelivered:
		if !proof.HasProof() {
			return nil, ErrMissingProof
		}
	case entities.StopFailed:
		if !isValidFailureReason(proof.FailureReason) {
			return nil, ErrMissingReason
		}
	}

	now := time.Now().UTC()

	var updated *entities.Stop
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		claim, err := s.repository.GetClaimForUpdate(ctx, stopID)
		if err != nil {
			return fmt.Errorf("claim stop: %w", err)
		}

		if claim.DriverID != driverID {
			return ErrNotAuthorized
		}

		if claim.Stop.Status.IsTerminal() {
			return ErrInvalidTransition
		}

		updated, err = s.repository.UpdateTerminalStatus(ctx, stopID, claim.Stop.Version, newStatus, proof, now)
		if err != nil {
			return fmt.Errorf("update stop status: %w", err)
		}

		err = s.repository.ApplyOrderOutcome(ctx, claim.Stop.OrderID, orderStatusFor(newStatus), proof, now)
		if err != nil {
			return fmt.Errorf("apply order outcome: %w", err)
		}

		if newStatus == entities.StopDelivered {
			err = s.repository.MarkDriverDelivered(ctx, driverID)
			if err != nil {
				return fmt.Errorf("mark driver delivered: %w", err)
			}
		}

		return s.recomputeRun(ctx, claim.Stop.RunID, driverID)
	})
	if err != nil {
		return nil, err
	}

	transitionsTotal.WithLabelValues(newStatus.String()).Inc()
	return updated, nil
}

// recomputeRun пересчитывает агрегатный статус рана из текущего
// персистентного состояния стопов и протягивает его на статус водителя.
func (s *Stop) recomputeRun(ctx context.Context, runID, driverID string) error {
	counts, err := s.repository.GetRunStopCounts(ctx, runID)
	if err != nil {
		return fmt.Errorf("count run stops: %w", err)
	}

	next := s.statusFactory.Derive(*counts)
	err = s.repository.UpdateRunStatus(ctx, runID, next)
	if err != nil {
		return fmt.Errorf("update run status: %w", err)
	}

	switch next {
	case entities.RunActive:
		err = s.repository.UpdateDriverStatus(ctx, driverID, entities.DriverOnRun)
		if err != nil {
			return fmt.Errorf("update driver status: %w", err)
		}
	case entities.RunCompleted:
		active, err := s.repository.CountActiveRunsByDriver(ctx, driverID)
		if err != nil {
			return fmt.Errorf("count active runs: %w", err)
		}
		if active == 0 {
			err = s.repository.UpdateDriverStatus(ctx, driverID, entities.DriverAvailable)
			if err != nil {
				return fmt.Errorf("update driver status: %w", err)
			}
		}
	}

	return nil
}

func orderStatusFor(status entities.StopStatusType) entities.OrderStatusType {
	if status == entities.StopDelivered {
		return entities.OrderDelivered
	}
	return entities.OrderFailed
}

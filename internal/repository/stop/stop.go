package stop

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"driver-service/internal/entities"
	"driver-service/internal/repository"
	stopService "driver-service/internal/service/stop"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const stopColumns = "id, run_id, order_id, seq, status, failure_reason, notes, version, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetClaimForUpdate читает стоп вместе с владельцем его рана под row-level
// блокировкой. Вызывается только внутри транзакции терминального перехода.
func (r *Repository) GetClaimForUpdate(ctx context.Context, stopID string) (*entities.StopClaim, error) {
	query := `
		SELECT s.id, s.run_id, s.order_id, s.seq, s.status,
			s.failure_reason, s.notes, s.version, s.updated_at,
			r.driver_id
		FROM stops s
		JOIN runs r ON r.id = s.run_id
		WHERE s.id = $1
		FOR UPDATE OF s`

	var claimModel StopClaimDB
	err := r.querier.QueryRow(ctx, query, stopID).Scan(
		&claimModel.Stop.ID,
		&claimModel.Stop.RunID,
		&claimModel.Stop.OrderID,
		&claimModel.Stop.Seq,
		&claimModel.Stop.Status,
		&claimModel.Stop.FailureReason,
		&claimModel.Stop.Notes,
		&claimModel.Stop.Version,
		&claimModel.Stop.UpdatedAt,
		&claimModel.DriverID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stopService.ErrStopNotFound
		}

		// serializable: проигравший гонку падает на claim-чтении с 40001,
		// когда победитель успел зафиксировать свою версию строки
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, stopService.ErrConflict
		}

		return nil, fmt.Errorf("unexpected stop repository claim error: %w", err)
	}

	return ToClaimDomain(&claimModel), nil
}

// UpdateTerminalStatus записывает терминальный статус с optimistic-проверкой:
// строка должна быть всё ещё pending и с той же версией, что была прочитана.
// Ноль затронутых строк означает проигранную гонку.
func (r *Repository) UpdateTerminalStatus(
	ctx context.Context,
	stopID string,
	fromVersion int64,
	status entities.StopStatusType,
	proof entities.StopProof,
	at time.Time,
) (*entities.Stop, error) {
	var failureReason *string
	if proof.FailureReason != "" {
		reason := proof.FailureReason.String()
		failureReason = &reason
	}

	var notes *string
	if proof.Notes != "" {
		notes = &proof.Notes
	}

	query := `
		UPDATE stops
		SET status = $3,
			failure_reason = $4,
			notes = $5,
			version = version + 1,
			updated_at = $6
		WHERE id = $1
			AND version = $2
			AND status = 'pending'
		RETURNING ` + stopColumns

	var stopModel StopDB
	err := r.querier.QueryRow(ctx, query, stopID, fromVersion, status.String(), failureReason, notes, at).Scan(
		&stopModel.ID,
		&stopModel.RunID,
		&stopModel.OrderID,
		&stopModel.Seq,
		&stopModel.Status,
		&stopModel.FailureReason,
		&stopModel.Notes,
		&stopModel.Version,
		&stopModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stopService.ErrConflict
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, stopService.ErrConflict
		}

		return nil, fmt.Errorf("unexpected stop repository update error: %w", err)
	}

	return ToDomain(&stopModel), nil
}

// ApplyOrderOutcome переносит исход доставки на заказ: статус, подпись/фото
// и время доставки видны админской консоли сразу после коммита.
func (r *Repository) ApplyOrderOutcome(
	ctx context.Context,
	orderID string,
	status entities.OrderStatusType,
	proof entities.StopProof,
	at time.Time,
) error {
	builder := qb.
		Update("orders").
		Set("status", status.String()).
		Set("delivered_at", at).
		Set("updated_at", sq.Expr("NOW()"))

	if proof.Signature != "" {
		builder = builder.Set("signature", proof.Signature)
	}
	if proof.Photo != "" {
		builder = builder.Set("photo", proof.Photo)
	}

	builder = builder.Where(sq.Eq{"id": orderID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected stop repository order outcome error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected stop repository order outcome error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return stopService.ErrStopNotFound
	}

	return nil
}

func (r *Repository) GetRunStopCounts(ctx context.Context, runID string) (*entities.RunStopCounts, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'delivered'),
			COUNT(*) FILTER (WHERE status = 'failed')
		FROM stops
		WHERE run_id = $1`

	var counts entities.RunStopCounts
	err := r.querier.QueryRow(ctx, query, runID).Scan(
		&counts.Total,
		&counts.Pending,
		&counts.Delivered,
		&counts.Failed,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected stop repository counts error: %w", err)
	}

	return &counts, nil
}

func (r *Repository) UpdateRunStatus(ctx context.Context, runID string, status entities.RunStatusType) error {
	query := `
		UPDATE runs
		SET status = $2,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.querier.Exec(ctx, query, runID, status.String())
	if err != nil {
		return fmt.Errorf("unexpected stop repository run status error: %w", err)
	}

	return nil
}

func (r *Repository) MarkDriverDelivered(ctx context.Context, driverID string) error {
	query := `
		UPDATE drivers
		SET deliveries_today = deliveries_today + 1,
			active_orders = GREATEST(active_orders - 1, 0),
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.querier.Exec(ctx, query, driverID)
	if err != nil {
		return fmt.Errorf("unexpected stop repository driver counters error: %w", err)
	}

	return nil
}

func (r *Repository) CountActiveRunsByDriver(ctx context.Context, driverID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM runs
		WHERE driver_id = $1
			AND status = 'active'`

	var count int64
	err := r.querier.QueryRow(ctx, query, driverID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected stop repository active runs error: %w", err)
	}

	return count, nil
}

func (r *Repository) UpdateDriverStatus(ctx context.Context, driverID string, status entities.DriverStatusType) error {
	query := `
		UPDATE drivers
		SET status = $2,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.querier.Exec(ctx, query, driverID, status.String())
	if err != nil {
		return fmt.Errorf("unexpected stop repository driver status error: %w", err)
	}

	return nil
}

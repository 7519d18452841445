package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"driver-service/internal/entities"
	sessionService "driver-service/internal/service/session"
)

// Repository хранит сессии в таблице driver_sessions: токены переживают
// рестарт процесса, никакого процессного состояния сессий нет.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, sessionEntity entities.Session) error {
	sessionModel := FromDomain(&sessionEntity)

	query := `
		INSERT INTO driver_sessions (token, driver_id, issued_at, expires_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(
		ctx,
		query,
		sessionModel.Token,
		sessionModel.DriverID,
		sessionModel.IssuedAt,
		sessionModel.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected session repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByToken(ctx context.Context, token string) (*entities.Session, error) {
	query := `
		SELECT token, driver_id, issued_at, expires_at
		FROM driver_sessions
		WHERE token = $1`

	var sessionModel SessionDB
	err := r.querier.QueryRow(ctx, query, token).Scan(
		&sessionModel.Token,
		&sessionModel.DriverID,
		&sessionModel.IssuedAt,
		&sessionModel.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sessionService.ErrSessionNotFound
		}
		return nil, fmt.Errorf("unexpected session repository getbytoken error: %w", err)
	}

	return ToDomain(&sessionModel), nil
}

func (r *Repository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM driver_sessions WHERE token = $1`

	result, err := r.querier.Exec(ctx, query, token)
	if err != nil {
		return fmt.Errorf("unexpected session repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return sessionService.ErrSessionNotFound
	}

	return nil
}

func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM driver_sessions WHERE expires_at <= $1`

	result, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected session repository deleteexpired error: %w", err)
	}

	return result.RowsAffected(), nil
}

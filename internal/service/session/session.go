package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"driver-service/internal/entities"
)

type Session struct {
	sessions Repository
	drivers  DriverProvider
	ttl      time.Duration
}

func New(sessions Repository, drivers DriverProvider, ttl time.Duration) *Session {
	return &Session{
		sessions: sessions,
		drivers:  drivers,
		ttl:      ttl,
	}
}

// Login ищет водителя по точному совпадению телефона и выдаёт новый токен.
// Ранее выданные токены не отзываются: несколько параллельных сессий на
// одного водителя - документированное свойство, не баг.
func (s *Session) Login(ctx context.Context, phone string) (*entities.SessionGrant, error) {
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	driver, err := s.drivers.GetByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		return nil, fmt.Errorf("get driver by phone: %w", err)
	}

	issuedAt := time.Now().UTC()
	grant := entities.Session{
		Token:     uuid.NewString(),
		DriverID:  driver.ID,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(s.ttl),
	}

	err = s.sessions.Create(ctx, grant)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &entities.SessionGrant{
		Session: grant,
		Driver:  *driver,
	}, nil
}

// Validate возвращает ID водителя, которому принадлежит токен. Истечение
// абсолютное от момента выдачи, продления при использовании нет.
func (s *Session) Validate(ctx context.Context, token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", ErrUnauthorized
	}

	grant, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("get session: %w", err)
	}

	if grant.ExpiredAt(time.Now().UTC()) {
		return "", ErrUnauthorized
	}

	return grant.DriverID, nil
}

// Logout идемпотентен: повторный или неизвестный токен ошибкой не считается.
func (s *Session) Logout(ctx context.Context, token string) error {
	err := s.sessions.Delete(ctx, token)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *Session) PurgeExpired(ctx context.Context) (int64, error) {
	purged, err := s.sessions.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("purge expired sessions: %w", err)
	}
	return purged, nil
}

package session

import (
	"driver-service/internal/entities"
)

func ToDomain(s *SessionDB) *entities.Session {
	if s == nil {
		return nil
	}

	return &entities.Session{
		Token:     s.Token,
		DriverID:  s.DriverID,
		IssuedAt:  s.IssuedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

func FromDomain(s *entities.Session) *SessionDB {
	if s == nil {
		return nil
	}

	return &SessionDB{
		Token:     s.Token,
		DriverID:  s.DriverID,
		IssuedAt:  s.IssuedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

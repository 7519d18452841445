package session

import "errors"

var (
	ErrInvalidPhone = errors.New("invalid phone")

	// ErrUnauthorized возвращается одинаково для неизвестного и истёкшего
	// токена: наружу не должно утекать, какой именно случай сработал.
	ErrUnauthorized = errors.New("unauthorized")

	ErrSessionNotFound = errors.New("session not found")
)

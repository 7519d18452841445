package session

import "time"

type SessionDB struct {
	Token     string
	DriverID  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

package entities

import "time"

// Session - bearer токен водителя. Хранится в БД: сессии переживают рестарт
// процесса. Несколько одновременно валидных токенов на водителя допустимы -
// повторный логин выдаёт новый токен, не отзывая старые (multi-device).
type Session struct {
	Token     string
	DriverID  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ExpiredAt: истечение абсолютное от момента выдачи, без продления при
// использовании.
func (s Session) ExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionGrant - результат логина: свежий токен плюс публичный профиль
// водителя для мобильного приложения.
type SessionGrant struct {
	Session Session
	Driver  Driver
}

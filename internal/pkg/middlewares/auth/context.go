package auth

import "context"

type contextKey struct{}

var driverIDKey contextKey

// DriverID достаёт идентификатор водителя, положенный middleware.
// Пустая строка означает, что запрос не проходил аутентификацию.
func DriverID(ctx context.Context) string {
	id, _ := ctx.Value(driverIDKey).(string)
	return id
}

// WithDriverID кладёт идентификатор водителя в контекст запроса.
func WithDriverID(ctx context.Context, driverID string) context.Context {
	return context.WithValue(ctx, driverIDKey, driverID)
}

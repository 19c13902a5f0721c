package health

import "context"

// Pinger зависимость, доступность которой проверяет /readyz
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc адаптер функции к Pinger
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

type Logger interface {
	Warn(format string, v ...interface{})
}

package notifier

import "context"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics счётчик неудачных уведомлений
type Metrics interface {
	IncNotificationFailures(transport string)
}

// Sender транспорт доставки уведомления о записи
type Sender interface {
	Name() string
	Send(ctx context.Context, n BookingNotification) error
}

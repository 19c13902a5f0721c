package notifier

import "errors"

var (
	// ErrNotificationFailed возвращается, когда транспорт не смог доставить уведомление
	ErrNotificationFailed = errors.New("notifier: notification failed")

	// ErrInvalidResponse возвращается при неожиданном ответе функции уведомлений
	ErrInvalidResponse = errors.New("notifier: invalid response")

	// ErrDispatcherClosed возвращается после Close
	ErrDispatcherClosed = errors.New("notifier: dispatcher closed")

	// ErrQueueFull возвращается, когда все слоты отправки заняты
	ErrQueueFull = errors.New("notifier: dispatch queue full")
)

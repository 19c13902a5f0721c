package create_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput базовая ошибка валидации, ValidationError разворачивается в неё
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBarberNotFound возвращается, когда барбер не найден или неактивен
	ErrBarberNotFound = errors.New("barber not found")

	// ErrSlotNotOffered возвращается, когда время не входит в доступные слоты дня
	ErrSlotNotOffered = errors.New("time slot is not offered")

	// ErrSlotConflict возвращается, когда слот уже занят подтверждённой записью
	ErrSlotConflict = errors.New("time slot already booked")

	// ErrStoreUnavailable возвращается при ошибках хранилища
	ErrStoreUnavailable = errors.New("usecase: store unavailable")
)

// ValidationError ошибка конкретного поля запроса
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap позволяет проверять errors.Is(err, ErrInvalidInput)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

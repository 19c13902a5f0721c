package domain

import "errors"

var (
	// ErrInvalidDateRange дата начала окна позже даты окончания
	ErrInvalidDateRange = errors.New("domain: from date must not be after to date")

	// ErrInvalidTimeRange время начала окна не раньше времени окончания
	ErrInvalidTimeRange = errors.New("domain: start time must be before end time")
)

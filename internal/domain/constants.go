package domain

// SlotIntervalMinutes шаг сетки слотов
const SlotIntervalMinutes = 30

// Validation limits
const (
	MinCustomerNameLength = 2
	MaxCustomerNameLength = 100
	MaxEmailLength        = 254
	MinPhoneDigits        = 8
	MaxPhoneDigits        = 15
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

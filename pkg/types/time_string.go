package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerDay = 24 * 60
	timeLayout    = "15:04"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString время суток в формате HH:MM (wall-clock, без часового пояса).
// Значения в каноническом виде сравниваются лексикографически.
type TimeString string

// NewTimeString берёт часы и минуты из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит "HH:MM" или "HH:MM:SS" (секунды отбрасываются)
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", ErrInvalidTimeString
	}

	hours, err := parseTimePart(parts[0], 23)
	if err != nil {
		return "", err
	}
	minutes, err := parseTimePart(parts[1], 59)
	if err != nil {
		return "", err
	}
	if len(parts) == 3 {
		// Postgres отдаёт time как HH:MM:SS или HH:MM:SS.ffffff
		sec := parts[2]
		if dot := strings.IndexByte(sec, '.'); dot >= 0 {
			sec = sec[:dot]
		}
		if _, err := parseTimePart(sec, 59); err != nil {
			return "", err
		}
	}

	return FromMinutes(hours*60 + minutes)
}

// MustTimeString паникует при некорректном формате, удобно для констант и тестов
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(fmt.Sprintf("types: %q: %v", s, err))
	}
	return ts
}

// FromMinutes собирает время из количества минут от полуночи
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", ErrTimeOverflow
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

func parseTimePart(s string, max int) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, ErrInvalidTimeString
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > max {
		return 0, ErrInvalidTimeString
	}
	return n, nil
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() int {
	ts, err := NewTimeStringFromString(string(t))
	if err != nil {
		return -1
	}
	h, _ := strconv.Atoi(string(ts[:2]))
	m, _ := strconv.Atoi(string(ts[3:]))
	return h*60 + m
}

// AddMinutes сдвигает время на n минут, не выходя за пределы суток
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return FromMinutes(t.Minutes() + n)
}

// IsBefore строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	if _, err := NewTimeStringFromString(string(t)); err != nil {
		return err
	}
	return nil
}

// String возвращает каноническое представление HH:MM
func (t TimeString) String() string {
	return string(t)
}

// Scan реализует sql.Scanner (Postgres time, текст SQLite)
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

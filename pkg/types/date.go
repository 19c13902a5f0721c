package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout формат календарной даты
const DateLayout = "2006-01-02"

// ErrInvalidDate возвращается при некорректном формате даты
var ErrInvalidDate = errors.New("invalid date format")

// Date календарная дата YYYY-MM-DD без времени и часового пояса.
// Канонические значения сравниваются лексикографически.
type Date string

// ParseDate парсит YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date(t.Format(DateLayout)), nil
}

// MustDate паникует при некорректной дате
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf календарная дата момента t в его собственной локации
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Time возвращает полночь этой даты в локации loc
func (d Date) Time(loc *time.Location) time.Time {
	t, err := time.ParseInLocation(DateLayout, string(d), loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays сдвигает дату на n дней
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool { return d < other }

func (d Date) After(other Date) bool { return d > other }

// Between проверяет from <= d <= to
func (d Date) Between(from, to Date) bool {
	return !d.Before(from) && !d.After(to)
}

func (d Date) IsZero() bool {
	return d == ""
}

func (d Date) Validate() error {
	_, err := ParseDate(string(d))
	return err
}

func (d Date) String() string {
	return string(d)
}

// Scan реализует sql.Scanner: lib/pq отдаёт date как time.Time, SQLite как текст
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return string(d), nil
}

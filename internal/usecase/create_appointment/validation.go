package create_appointment

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// пробелы, дефисы, скобки и точки в номере допустимы и отбрасываются
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

// validateRequest проверяет поля и возвращает нормализованные значения
func validateRequest(req *Request, defaultCountryPrefix string) (*validated, error) {
	name := strings.TrimSpace(req.CustomerName)
	if n := utf8.RuneCountInString(name); n < domain.MinCustomerNameLength {
		return nil, invalid("customerName", "name must be at least 2 characters")
	} else if n > domain.MaxCustomerNameLength {
		return nil, invalid("customerName", "name must be at most 100 characters")
	}

	email := strings.TrimSpace(req.CustomerEmail)
	if len(email) > domain.MaxEmailLength || !emailPattern.MatchString(email) {
		return nil, invalid("customerEmail", "please enter a valid email address")
	}

	phone, ok := normalizePhone(req.CustomerPhone, defaultCountryPrefix)
	if !ok {
		return nil, invalid("customerPhone", "please enter a valid phone number")
	}

	barberID, err := uuid.Parse(strings.TrimSpace(req.BarberID))
	if err != nil || barberID == uuid.Nil {
		return nil, invalid("barberId", "please select a barber")
	}

	date, err := types.ParseDate(strings.TrimSpace(req.AppointmentDate))
	if err != nil {
		return nil, invalid("appointmentDate", "please select a date")
	}

	t, err := types.NewTimeStringFromString(strings.TrimSpace(req.AppointmentTime))
	if err != nil {
		return nil, invalid("appointmentTime", "please select a time")
	}

	var serviceID *string
	if req.ServiceID != nil {
		if id := strings.TrimSpace(*req.ServiceID); id != "" {
			serviceID = &id
		}
	}

	return &validated{
		name:      name,
		email:     email,
		phone:     phone,
		barberID:  barberID,
		serviceID: serviceID,
		date:      date,
		time:      t,
	}, nil
}

// normalizePhone приводит номер к виду +<код страны><цифры>.
// Префикс 00 заменяется на +, номер без кода получает defaultCountryPrefix.
func normalizePhone(raw, defaultCountryPrefix string) (string, bool) {
	phone := phoneSeparators.Replace(strings.TrimSpace(raw))

	switch {
	case strings.HasPrefix(phone, "+"):
		phone = phone[1:]
	case strings.HasPrefix(phone, "00"):
		phone = phone[2:]
	default:
		phone = strings.TrimPrefix(defaultCountryPrefix, "+") + phone
	}

	if len(phone) < domain.MinPhoneDigits || len(phone) > domain.MaxPhoneDigits {
		return "", false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return "", false
		}
	}

	return "+" + phone, true
}

// Package locale выбирает язык ответа (da, en, ar) и переводит
// сообщения, которые видит клиент.
package locale

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// Lang код поддерживаемого языка
type Lang string

const (
	English Lang = "en"
	Danish  Lang = "da"
	Arabic  Lang = "ar"
)

// Default язык сайта по умолчанию
const Default = Danish

var (
	supported = []Lang{Danish, English, Arabic}
	matcher   = language.NewMatcher([]language.Tag{language.Danish, language.English, language.Arabic})
)

// Match выбирает поддерживаемый язык по явному параметру и Accept-Language.
// Явный параметр важнее заголовка.
func Match(explicit, acceptLanguage string) Lang {
	var tags []language.Tag

	if explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			tags = append(tags, tag)
		}
	}
	if acceptLanguage != "" {
		if parsed, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			tags = append(tags, parsed...)
		}
	}
	if len(tags) == 0 {
		return Default
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return supported[idx]
}

// FromRequest язык из ?lang= или заголовка Accept-Language
func FromRequest(r *http.Request) Lang {
	return Match(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
}

// MessageKey ключ пользовательского сообщения
type MessageKey string

const (
	MsgSlotConflict     MessageKey = "slot_conflict"
	MsgSlotNotOffered   MessageKey = "slot_not_offered"
	MsgStoreUnavailable MessageKey = "store_unavailable"
	MsgBarberNotFound   MessageKey = "barber_not_found"
	MsgTooManyRequests  MessageKey = "too_many_requests"
)

var messages = map[MessageKey]map[Lang]string{
	MsgSlotConflict: {
		English: "This time slot has already been booked, please choose another.",
		Danish:  "Dette tidspunkt er allerede booket, vælg venligst et andet.",
		Arabic:  "تم حجز هذا الموعد بالفعل، يرجى اختيار موعد آخر.",
	},
	MsgSlotNotOffered: {
		English: "The selected time is not available for this barber.",
		Danish:  "Det valgte tidspunkt er ikke ledigt hos denne frisør.",
		Arabic:  "الوقت المحدد غير متاح لدى هذا الحلاق.",
	},
	MsgStoreUnavailable: {
		English: "Service temporarily unavailable, please try again.",
		Danish:  "Tjenesten er midlertidigt utilgængelig, prøv igen.",
		Arabic:  "الخدمة غير متاحة مؤقتًا، يرجى المحاولة مرة أخرى.",
	},
	MsgBarberNotFound: {
		English: "Barber not found.",
		Danish:  "Frisøren blev ikke fundet.",
		Arabic:  "لم يتم العثور على الحلاق.",
	},
	MsgTooManyRequests: {
		English: "Too many requests, please try again later.",
		Danish:  "For mange forespørgsler, prøv igen senere.",
		Arabic:  "طلبات كثيرة جدًا، يرجى المحاولة لاحقًا.",
	},
}

// Message перевод сообщения, без перевода отдаётся английский текст
func Message(lang Lang, key MessageKey) string {
	byLang, ok := messages[key]
	if !ok {
		return string(key)
	}
	if msg, ok := byLang[lang]; ok {
		return msg
	}
	return byLang[English]
}

var slotReasons = map[domain.SlotReason]map[Lang]string{
	domain.ReasonAlreadyBooked: {
		English: "Booked",
		Danish:  "Optaget",
		Arabic:  "محجوز",
	},
	domain.ReasonPastTime: {
		English: "Past",
		Danish:  "Fortid",
		Arabic:  "انتهى",
	},
}

// SlotReason подпись причины недоступности слота
func SlotReason(lang Lang, reason domain.SlotReason) string {
	if reason == domain.ReasonNone {
		return ""
	}
	if byLang, ok := slotReasons[reason]; ok {
		if label, ok := byLang[lang]; ok {
			return label
		}
	}
	return string(reason)
}

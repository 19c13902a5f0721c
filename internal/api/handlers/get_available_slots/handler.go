package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/locale"
	getAvailableSlots "github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
)

const (
	msgInvalidBarberID = "invalid barber ID"
	msgMissingDate     = "date is required"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgDateInPast      = "date must not be in the past"
)

var (
	errInvalidBarberID = errors.New(msgInvalidBarberID)
	errInvalidDate     = errors.New(msgInvalidDate)
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/slots
// Query params: date (required, YYYY-MM-DD), lang (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberIDStr := mux.Vars(r)["barberId"]
	lang := locale.FromRequest(r)

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /barbers/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(barberIDStr, dateStr)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/slots - Invalid request: barber_id=%q, date=%q: %v", barberIDStr, dateStr, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id}/slots - Barber not found: barber_id=%s", useCaseReq.BarberID)
			handlers.RespondNotFound(w, locale.Message(lang, locale.MsgBarberNotFound))

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /barbers/{id}/slots - Date in the past: barber_id=%s, date=%s", useCaseReq.BarberID, useCaseReq.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableSlots.ErrStoreUnavailable):
			h.logger.Error("GET /barbers/{id}/slots - Store unavailable: barber_id=%s, date=%s, error=%v",
				useCaseReq.BarberID, useCaseReq.Date, err)
			handlers.RespondServiceUnavailable(w, locale.Message(lang, locale.MsgStoreUnavailable))

		default:
			h.logger.Error("GET /barbers/{id}/slots - Failed to get slots: barber_id=%s, date=%s, error=%v",
				useCaseReq.BarberID, useCaseReq.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result, lang)

	h.logger.Info("GET /barbers/{id}/slots - Slots retrieved: barber_id=%s, date=%s, available=%d, total=%d",
		result.BarberID, result.Date, result.AvailableCount, result.TotalCount)
	handlers.RespondJSON(w, http.StatusOK, response)
}

package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/locale"
	createAppointment "github.com/m04kA/barbershop-booking/internal/usecase/create_appointment"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lang := locale.FromRequest(r)

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErr *createAppointment.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /appointments - Validation failed: field=%s, message=%s", validationErr.Field, validationErr.Message)
			handlers.RespondFieldError(w, validationErr.Field, validationErr.Message)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createAppointment.ErrBarberNotFound):
			h.logger.Warn("POST /appointments - Barber not found: barber_id=%s", req.BarberID)
			handlers.RespondNotFound(w, locale.Message(lang, locale.MsgBarberNotFound))

		case errors.Is(err, createAppointment.ErrSlotNotOffered):
			h.logger.Warn("POST /appointments - Slot not offered: barber_id=%s, date=%s, time=%s",
				req.BarberID, req.AppointmentDate, req.AppointmentTime)
			handlers.RespondConflict(w, locale.Message(lang, locale.MsgSlotNotOffered))

		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: barber_id=%s, date=%s, time=%s",
				req.BarberID, req.AppointmentDate, req.AppointmentTime)
			handlers.RespondConflict(w, locale.Message(lang, locale.MsgSlotConflict))

		case errors.Is(err, createAppointment.ErrStoreUnavailable):
			h.logger.Error("POST /appointments - Store unavailable: barber_id=%s, error=%v", req.BarberID, err)
			handlers.RespondServiceUnavailable(w, locale.Message(lang, locale.MsgStoreUnavailable))

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: barber_id=%s, error=%v", req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%s, barber_id=%s, date=%s, time=%s",
		result.ID, result.BarberID, result.AppointmentDate, result.AppointmentTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

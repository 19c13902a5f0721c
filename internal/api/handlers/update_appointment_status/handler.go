package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/locale"
	"github.com/m04kA/barbershop-booking/internal/service/appointments"
	"github.com/m04kA/barbershop-booking/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "invalid appointment ID"
	msgInvalidRequestBody   = "invalid request body"
	msgMissingStatus        = "status is required"
	msgAppointmentNotFound  = "appointment not found"
	msgInvalidTransition    = "status transition not allowed"
	msgStoreUnavailable     = "service temporarily unavailable, please try again"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Status == "" {
		handlers.RespondBadRequest(w, msgMissingStatus)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid status: appointment_id=%s, status=%q", id, req.Status)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /admin/appointments/{id}/status - Appointment not found: appointment_id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/appointments/{id}/status - Transition rejected: appointment_id=%s, error=%v", id, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, appointments.ErrSlotConflict):
			h.logger.Warn("PATCH /admin/appointments/{id}/status - Slot conflict on re-confirm: appointment_id=%s", id)
			handlers.RespondConflict(w, locale.Message(locale.English, locale.MsgSlotConflict))

		case errors.Is(err, appointments.ErrStoreUnavailable):
			h.logger.Error("PATCH /admin/appointments/{id}/status - Store unavailable: appointment_id=%s, error=%v", id, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PATCH /admin/appointments/{id}/status - Failed to update status: appointment_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/appointments/{id}/status - Status updated: appointment_id=%s, status=%s, user_id=%s",
		id, result.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

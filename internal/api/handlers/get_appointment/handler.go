package get_appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "invalid appointment ID"
	msgAppointmentNotFound  = "appointment not found"
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

// Handle GET /api/v1/admin/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["appointmentId"]
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.logger.Warn("GET /admin/appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /admin/appointments/{id} - Appointment not found: appointment_id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrStoreUnavailable):
			h.logger.Error("GET /admin/appointments/{id} - Store unavailable: appointment_id=%s, error=%v", id, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /admin/appointments/{id} - Failed to get appointment: appointment_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments/{id} - Appointment retrieved: appointment_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package list_appointments

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/service/appointments"
	"github.com/m04kA/barbershop-booking/internal/service/appointments/models"
)

const (
	msgInvalidBarberID  = "invalid barber ID"
	msgStoreUnavailable = "service temporarily unavailable, please try again"
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

// Handle GET /api/v1/admin/appointments
// Query params: scope (today|upcoming|all), status, barberId, sortBy, order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	query := r.URL.Query()

	req := &models.ListRequest{
		Scope:  query.Get("scope"),
		SortBy: query.Get("sortBy"),
		Order:  query.Get("order"),
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if raw := query.Get("barberId"); raw != "" {
		barberID, err := uuid.Parse(raw)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid barber ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarberID)
			return
		}
		req.BarberID = &barberID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Invalid query: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, appointments.ErrStoreUnavailable):
			h.logger.Error("GET /admin/appointments - Store unavailable: user_id=%s, error=%v", userID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /admin/appointments - Failed to list appointments: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved: user_id=%s, count=%d", userID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package list_availability

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/service/availability"
)

const (
	msgInvalidBarberID  = "invalid barber ID"
	msgBarberNotFound   = "barber not found"
	msgStoreUnavailable = "service temporarily unavailable, please try again"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/barbers/{barberId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := uuid.Parse(mux.Vars(r)["barberId"])
	if err != nil {
		h.logger.Warn("GET /admin/barbers/{id}/availability - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	result, err := h.service.ListByBarber(r.Context(), barberID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrBarberNotFound):
			h.logger.Warn("GET /admin/barbers/{id}/availability - Barber not found: barber_id=%s", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, availability.ErrStoreUnavailable):
			h.logger.Error("GET /admin/barbers/{id}/availability - Store unavailable: barber_id=%s, error=%v", barberID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /admin/barbers/{id}/availability - Failed to list windows: barber_id=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/barbers/{id}/availability - Windows retrieved: barber_id=%s, count=%d, available_today=%t",
		barberID, len(result.Windows), result.AvailableToday)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package upsert_availability

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/service/availability"
	"github.com/m04kA/barbershop-booking/internal/service/availability/models"
)

const (
	msgInvalidBarberID    = "invalid barber ID"
	msgInvalidRequestBody = "invalid request body"
	msgBarberNotFound     = "barber not found"
	msgStoreUnavailable   = "service temporarily unavailable, please try again"
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

// Handle PUT /api/v1/admin/barbers/{barberId}/availability
// Окно с тем же (fromDate, toDate) перезаписывается, последняя запись побеждает.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	barberID, err := uuid.Parse(mux.Vars(r)["barberId"])
	if err != nil {
		h.logger.Warn("PUT /admin/barbers/{id}/availability - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	var req models.UpsertRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/barbers/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), barberID, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /admin/barbers/{id}/availability - Invalid window: barber_id=%s, error=%v", barberID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, availability.ErrBarberNotFound):
			h.logger.Warn("PUT /admin/barbers/{id}/availability - Barber not found: barber_id=%s", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, availability.ErrStoreUnavailable):
			h.logger.Error("PUT /admin/barbers/{id}/availability - Store unavailable: barber_id=%s, error=%v", barberID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PUT /admin/barbers/{id}/availability - Failed to save window: barber_id=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/barbers/{id}/availability - Window saved: window_id=%s, barber_id=%s, user_id=%s",
		result.ID, barberID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

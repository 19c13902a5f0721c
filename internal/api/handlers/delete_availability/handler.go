package delete_availability

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/service/availability"
)

const (
	msgInvalidWindowID  = "invalid availability ID"
	msgWindowNotFound   = "availability window not found"
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

// Handle DELETE /api/v1/admin/availability/{availabilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["availabilityId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/availability/{id} - Invalid availability ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, availability.ErrWindowNotFound):
			h.logger.Warn("DELETE /admin/availability/{id} - Window not found: window_id=%s", id)
			handlers.RespondNotFound(w, msgWindowNotFound)

		case errors.Is(err, availability.ErrStoreUnavailable):
			h.logger.Error("DELETE /admin/availability/{id} - Store unavailable: window_id=%s, error=%v", id, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("DELETE /admin/availability/{id} - Failed to delete window: window_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/availability/{id} - Window deleted: window_id=%s, user_id=%s", id, userID)
	handlers.RespondNoContent(w)
}

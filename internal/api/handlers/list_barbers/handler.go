package list_barbers

import (
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/locale"
	"github.com/m04kA/barbershop-booking/internal/service/barbers"
)

type Handler struct {
	service BarberService
	logger  Logger
}

func NewHandler(service BarberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

type response struct {
	Barbers []barbers.BarberResponse `json:"barbers"`
}

// Handle GET /api/v1/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /barbers - Failed to list barbers: %v", err)
		handlers.RespondServiceUnavailable(w, locale.Message(locale.FromRequest(r), locale.MsgStoreUnavailable))
		return
	}

	if list == nil {
		list = []barbers.BarberResponse{}
	}

	h.logger.Info("GET /barbers - Barbers retrieved: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, response{Barbers: list})
}

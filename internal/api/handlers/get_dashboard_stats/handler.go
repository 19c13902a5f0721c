package get_dashboard_stats

import (
	"errors"
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/service/appointments"
)

const msgStoreUnavailable = "service temporarily unavailable, please try again"

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Stats(r.Context())
	if err != nil {
		if errors.Is(err, appointments.ErrStoreUnavailable) {
			h.logger.Error("GET /admin/stats - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)
			return
		}
		h.logger.Error("GET /admin/stats - Failed to collect stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/stats - Stats retrieved: date=%s, today=%d, upcoming=%d",
		result.Date, result.TodayTotal, result.UpcomingWeek)
	handlers.RespondJSON(w, http.StatusOK, result)
}

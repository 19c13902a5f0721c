package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
)

const checkTimeout = 2 * time.Second

type Handler struct {
	checks map[string]Pinger
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		checks: make(map[string]Pinger),
		logger: logger,
	}
}

// Register добавляет проверку готовности. Вызывается до старта сервера.
func (h *Handler) Register(name string, p Pinger) {
	h.checks[name] = p
}

type readyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Live GET /healthz
func (h *Handler) Live(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, readyResponse{Status: "ok"})
}

// Ready GET /readyz, 503 если хотя бы одна зависимость недоступна
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := readyResponse{Status: "ok", Checks: make(map[string]string, len(names))}
	status := http.StatusOK

	for _, name := range names {
		if err := h.checks[name].PingContext(ctx); err != nil {
			h.logger.Warn("GET /readyz - %s is not ready: %v", name, err)
			resp.Checks[name] = "unavailable"
			resp.Status = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	handlers.RespondJSON(w, status, resp)
}

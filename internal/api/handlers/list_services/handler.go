package list_services

import (
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/locale"
)

const msgInvalidCategory = "invalid category, expected men or women"

type Handler struct {
	catalog ServiceCatalog
	logger  Logger
}

func NewHandler(catalog ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
// Query params: category (men|women, optional), lang (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var category *domain.ServiceCategory
	if raw := r.URL.Query().Get("category"); raw != "" {
		c := domain.ServiceCategory(raw)
		if c != domain.CategoryMen && c != domain.CategoryWomen {
			h.logger.Warn("GET /services - Invalid category: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidCategory)
			return
		}
		category = &c
	}

	lang := locale.FromRequest(r)
	services := h.catalog.List(category)

	h.logger.Info("GET /services - Services retrieved: count=%d, lang=%s", len(services), lang)
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services, lang))
}

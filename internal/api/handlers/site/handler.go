package site

import (
	"net/http"

	"github.com/mundoinsolito/manicura/internal/api/handlers"
)

// Handler отдает публичную витрину: данные салона, услуги и акции
type Handler struct {
	settings   SettingsService
	catalog    CatalogService
	promotions PromotionsService
	logger     Logger
}

func NewHandler(settings SettingsService, catalog CatalogService, promotions PromotionsService, logger Logger) *Handler {
	return &Handler{
		settings:   settings,
		catalog:    catalog,
		promotions: promotions,
		logger:     logger,
	}
}

// HandleSite GET /api/v1/site
func (h *Handler) HandleSite(w http.ResponseWriter, r *http.Request) {
	result, err := h.settings.GetSite(r.Context())
	if err != nil {
		h.logger.Error("GET /site - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleServices GET /api/v1/services
func (h *Handler) HandleServices(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.List(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /services - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandlePromotions GET /api/v1/promotions
func (h *Handler) HandlePromotions(w http.ResponseWriter, r *http.Request) {
	result, err := h.promotions.ListCurrent(r.Context())
	if err != nil {
		h.logger.Error("GET /promotions - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

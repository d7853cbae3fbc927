package admin_settings

import (
	"errors"
	"net/http"

	"github.com/mundoinsolito/manicura/internal/api/handlers"
	"github.com/mundoinsolito/manicura/internal/service/settings"
	"github.com/mundoinsolito/manicura/internal/service/settings/models"
)

const (
	msgInvalidBody  = "el cuerpo de la solicitud es inválido"
	msgInvalidData  = "los datos de configuración son inválidos"
	msgInvalidHours = "la hora de apertura debe ser anterior a la de cierre"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/admin/settings
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/settings - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/admin/settings
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidBusinessHours):
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, settings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /admin/settings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings - Updated: business=%s, mode=%s", result.BusinessName, result.ScheduleMode)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_client_status

import (
	"errors"
	"net/http"

	"github.com/mundoinsolito/manicura/internal/api/handlers"
	"github.com/mundoinsolito/manicura/internal/service/appointments"
)

const (
	msgMissingCedula  = "el parámetro cedula es obligatorio"
	msgClientNotFound = "no encontramos reservas con esa cédula"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/status?cedula=V-12345678
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cedula := r.URL.Query().Get("cedula")
	if cedula == "" {
		handlers.RespondBadRequest(w, msgMissingCedula)
		return
	}

	result, err := h.service.GetClientStatus(r.Context(), cedula)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("GET /appointments/status - Failed: cedula=%s, error=%v", cedula, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

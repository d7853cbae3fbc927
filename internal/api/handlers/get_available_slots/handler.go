package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mundoinsolito/manicura/internal/api/handlers"
	"github.com/mundoinsolito/manicura/internal/domain"
	getSlots "github.com/mundoinsolito/manicura/internal/usecase/get_available_slots"
)

const (
	msgMissingDate          = "el parámetro date es obligatorio"
	msgInvalidDate          = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidDuration      = "duración inválida, se espera un número de minutos"
	msgInvalidConfiguration = "la configuración del horario es inválida"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?date=YYYY-MM-DD&duration=90
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date=%s: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration := 0
	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		duration, err = strconv.Atoi(durationStr)
		if err != nil || duration < 0 {
			h.logger.Warn("GET /available-slots - Invalid duration=%s", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		Date:              date,
		RequestedDuration: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getSlots.ErrInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getSlots.ErrInvalidConfiguration):
			h.logger.Warn("GET /available-slots - Invalid configuration: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidConfiguration)

		default:
			h.logger.Error("GET /available-slots - Failed: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

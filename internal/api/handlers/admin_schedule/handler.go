package admin_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mundoinsolito/manicura/internal/api/handlers"
	"github.com/mundoinsolito/manicura/internal/service/schedule"
	"github.com/mundoinsolito/manicura/internal/service/schedule/models"
)

const (
	msgInvalidBody         = "el cuerpo de la solicitud es inválido"
	msgInvalidData         = "los datos del horario son inválidos"
	msgInvalidTimeRange    = "la hora de inicio debe ser anterior a la de fin"
	msgBlockedTimeNotFound = "el bloqueo no existe"
	msgScheduleNotFound    = "no hay horario especial para esa fecha"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreateBlockedTime POST /api/v1/admin/blocked-times
func (h *Handler) HandleCreateBlockedTime(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlockedTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.CreateBlockedTime(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /admin/blocked-times - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-times - Created: id=%s, date=%s, fullDay=%t", result.ID, result.Date, result.FullDay)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleListBlockedTimes GET /api/v1/admin/blocked-times
func (h *Handler) HandleListBlockedTimes(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlockedTimes(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/blocked-times - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDeleteBlockedTime DELETE /api/v1/admin/blocked-times/{id}
func (h *Handler) HandleDeleteBlockedTime(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteBlockedTime(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockedTimeNotFound):
			handlers.RespondNotFound(w, msgBlockedTimeNotFound)

		default:
			h.logger.Error("DELETE /admin/blocked-times/{id} - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}

// HandleSaveCustomSchedule PUT /api/v1/admin/custom-schedules
func (h *Handler) HandleSaveCustomSchedule(w http.ResponseWriter, r *http.Request) {
	var req models.SaveCustomScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.SaveCustomSchedule(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /admin/custom-schedules - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/custom-schedules - Saved: date=%s, hours=%d", result.Date, len(result.Hours))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListCustomSchedules GET /api/v1/admin/custom-schedules
func (h *Handler) HandleListCustomSchedules(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCustomSchedules(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/custom-schedules - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDeleteCustomSchedule DELETE /api/v1/admin/custom-schedules/{date}
func (h *Handler) HandleDeleteCustomSchedule(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	if err := h.service.DeleteCustomSchedule(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, schedule.ErrScheduleNotFound):
			handlers.RespondNotFound(w, msgScheduleNotFound)

		default:
			h.logger.Error("DELETE /admin/custom-schedules/{date} - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}

package admin_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mundoinsolito/manicura/internal/api/handlers"
	"github.com/mundoinsolito/manicura/internal/service/appointments"
	"github.com/mundoinsolito/manicura/internal/service/appointments/models"
	createAppointment "github.com/mundoinsolito/manicura/internal/usecase/create_appointment"
	recordPayment "github.com/mundoinsolito/manicura/internal/usecase/record_payment"
)

const (
	msgInvalidBody         = "el cuerpo de la solicitud es inválido"
	msgInvalidQuery        = "los parámetros de búsqueda son inválidos"
	msgInvalidData         = "los datos de la cita son inválidos"
	msgInvalidStatus       = "el estado indicado es inválido"
	msgInvalidPayment      = "los datos del pago son inválidos"
	msgAppointmentNotFound = "la cita no existe"
	msgServiceNotFound     = "el servicio seleccionado no existe"
	msgSlotNotAvailable    = "el horario seleccionado ya no está disponible"
)

type Handler struct {
	service   AppointmentsService
	createUC  CreateAppointmentUseCase
	paymentUC RecordPaymentUseCase
	logger    Logger
}

func NewHandler(service AppointmentsService, createUC CreateAppointmentUseCase, paymentUC RecordPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		service:   service,
		createUC:  createUC,
		paymentUC: paymentUC,
		logger:    logger,
	}
}

// HandleCreate POST /api/v1/admin/appointments
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/appointments - Invalid request data: %v", err)
		handlers.RespondBadRequest(w, msgInvalidData)
		return
	}

	result, err := h.createUC.ExecuteAdmin(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /admin/appointments - Invalid input: cedula=%s, error=%v", req.Cedula, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrSlotUnavailable):
			h.logger.Info("POST /admin/appointments - Slot taken: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /admin/appointments - Failed: cedula=%s, error=%v", req.Cedula, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/appointments - Created: id=%s, date=%s, time=%s", result.AppointmentID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// HandleList GET /api/v1/admin/appointments
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req, err := parseListQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/appointments - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /admin/appointments - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/admin/appointments/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("GET /admin/appointments/{id} - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateStatus PATCH /api/v1/admin/appointments/{id}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("PATCH /admin/appointments/{id}/status - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/appointments/{id}/status - Updated: id=%s, status=%s", id, req.Status)
	handlers.RespondNoContent(w)
}

// HandleUpdatePayment PATCH /api/v1/admin/appointments/{id}/payment
func (h *Handler) HandleUpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.paymentUC.Execute(r.Context(), &recordPayment.Request{
		AppointmentID: id,
		PaymentStatus: req.PaymentStatus,
		Amount:        req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, recordPayment.ErrInvalidPaymentStatus), errors.Is(err, recordPayment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPayment)

		case errors.Is(err, recordPayment.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("PATCH /admin/appointments/{id}/payment - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/appointments/{id}/payment - Recorded: id=%s, status=%s, amount=%.2f, income=%.2f",
		id, result.PaymentStatus, result.Amount, result.IncomeAmount)

	handlers.RespondJSON(w, http.StatusOK, &PaymentRecordedResponse{
		AppointmentID: result.AppointmentID,
		PaymentStatus: result.PaymentStatus,
		Amount:        result.Amount,
		IncomeAmount:  result.IncomeAmount,
		TransactionID: result.TransactionID,
	})
}

// HandleDelete DELETE /api/v1/admin/appointments/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("DELETE /admin/appointments/{id} - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}

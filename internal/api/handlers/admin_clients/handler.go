package admin_clients

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mundoinsolito/manicura/internal/api/handlers"
	"github.com/mundoinsolito/manicura/internal/service/clients"
	"github.com/mundoinsolito/manicura/internal/service/clients/models"
)

const (
	msgInvalidBody     = "el cuerpo de la solicitud es inválido"
	msgInvalidData     = "los datos del cliente son inválidos"
	msgClientNotFound  = "el cliente no existe"
	msgDuplicateCedula = "ya existe un cliente con esa cédula"
)

type Handler struct {
	service ClientsService
	logger  Logger
}

func NewHandler(service ClientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/admin/clients
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, clients.ErrDuplicateCedula):
			handlers.RespondError(w, http.StatusConflict, msgDuplicateCedula)

		default:
			h.logger.Error("POST /admin/clients - Failed: cedula=%s, error=%v", req.Cedula, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/clients - Created: id=%s, cedula=%s", result.ID, req.Cedula)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/admin/clients
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/clients - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/admin/clients/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("GET /admin/clients/{id} - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/admin/clients/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, clients.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("PUT /admin/clients/{id} - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/clients/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("DELETE /admin/clients/{id} - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}

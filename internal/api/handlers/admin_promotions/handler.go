package admin_promotions

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mundoinsolito/manicura/internal/api/handlers"
	"github.com/mundoinsolito/manicura/internal/service/promotions"
	"github.com/mundoinsolito/manicura/internal/service/promotions/models"
)

const (
	msgInvalidBody       = "el cuerpo de la solicitud es inválido"
	msgInvalidData       = "los datos de la promoción son inválidos"
	msgInvalidValidity   = "la fecha de fin debe ser posterior a la de inicio"
	msgPromotionNotFound = "la promoción no existe"
)

type Handler struct {
	service PromotionsService
	logger  Logger
}

func NewHandler(service PromotionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/admin/promotions
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.SavePromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrInvalidValidityWindow):
			handlers.RespondBadRequest(w, msgInvalidValidity)

		case errors.Is(err, promotions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /admin/promotions - Failed: title=%s, error=%v", req.Title, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/promotions - Created: id=%s, title=%s", result.ID, result.Title)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/admin/promotions
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/promotions - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/admin/promotions/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.SavePromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrInvalidValidityWindow):
			handlers.RespondBadRequest(w, msgInvalidValidity)

		case errors.Is(err, promotions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, promotions.ErrPromotionNotFound):
			handlers.RespondNotFound(w, msgPromotionNotFound)

		default:
			h.logger.Error("PUT /admin/promotions/{id} - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/promotions/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, promotions.ErrPromotionNotFound):
			handlers.RespondNotFound(w, msgPromotionNotFound)

		default:
			h.logger.Error("DELETE /admin/promotions/{id} - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}

package admin_transactions

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"

	"github.com/mundoinsolito/manicura/internal/api/handlers"
	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/internal/service/finances"
	"github.com/mundoinsolito/manicura/internal/service/finances/models"
)

const (
	msgInvalidBody         = "el cuerpo de la solicitud es inválido"
	msgInvalidData         = "los datos del movimiento son inválidos"
	msgInvalidQuery        = "los parámetros de búsqueda son inválidos"
	msgTransactionNotFound = "el movimiento no existe"
)

type Handler struct {
	service FinancesService
	logger  Logger
}

func NewHandler(service FinancesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/admin/transactions
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransactionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, finances.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /admin/transactions - Failed: type=%s, error=%v", req.Type, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/transactions - Created: id=%s, type=%s, amount=%.2f", result.ID, result.Type, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/admin/transactions
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req, err := parseListQuery(r.URL.Query())
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, finances.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /admin/transactions - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSummary GET /api/v1/admin/transactions/summary
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	req, err := parseListQuery(r.URL.Query())
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.Summary(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, finances.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /admin/transactions/summary - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/transactions/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, finances.ErrTransactionNotFound):
			handlers.RespondNotFound(w, msgTransactionNotFound)

		default:
			h.logger.Error("DELETE /admin/transactions/{id} - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}

func parseListQuery(query url.Values) (*models.GetTransactionsRequest, error) {
	req := &models.GetTransactionsRequest{}

	if txType := query.Get("type"); txType != "" {
		req.Type = &txType
	}

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &start
	}
	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &end
	}

	return req, nil
}

package models

import (
	"time"

	"github.com/mundoinsolito/manicura/internal/domain"
)

// Request модели

// CreateClientRequest запрос на создание клиента
type CreateClientRequest struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Cedula         string  `json:"cedula"`
	Email          *string `json:"email,omitempty"`
	HealthAlerts   *string `json:"healthAlerts,omitempty"`
	Preferences    *string `json:"preferences,omitempty"`
	FavoriteColors *string `json:"favoriteColors,omitempty"`
	NailShape      *string `json:"nailShape,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateClientRequest) ToDomain() *domain.Client {
	return &domain.Client{
		Name:           r.Name,
		Phone:          r.Phone,
		Cedula:         r.Cedula,
		Email:          r.Email,
		HealthAlerts:   r.HealthAlerts,
		Preferences:    r.Preferences,
		FavoriteColors: r.FavoriteColors,
		NailShape:      r.NailShape,
		Notes:          r.Notes,
	}
}

// UpdateClientRequest запрос на обновление клиента
// Cédula не меняется: это идентификатор клиента при бронировании
type UpdateClientRequest struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Email          *string `json:"email,omitempty"`
	HealthAlerts   *string `json:"healthAlerts,omitempty"`
	Preferences    *string `json:"preferences,omitempty"`
	FavoriteColors *string `json:"favoriteColors,omitempty"`
	NailShape      *string `json:"nailShape,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// Response модели

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Cedula         string    `json:"cedula"`
	Email          *string   `json:"email,omitempty"`
	HealthAlerts   *string   `json:"healthAlerts,omitempty"`
	Preferences    *string   `json:"preferences,omitempty"`
	FavoriteColors *string   `json:"favoriteColors,omitempty"`
	NailShape      *string   `json:"nailShape,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// Методы конвертации

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}

	return &ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Cedula:         c.Cedula,
		Email:          c.Email,
		HealthAlerts:   c.HealthAlerts,
		Preferences:    c.Preferences,
		FavoriteColors: c.FavoriteColors,
		NailShape:      c.NailShape,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
	}
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]ClientResponse, 0, len(clients)),
	}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, *FromDomainClient(c))
	}
	return resp
}

package admin_clients

import (
	"context"

	"github.com/mundoinsolito/manicura/internal/service/clients/models"
)

type ClientsService interface {
	Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error)
	GetByID(ctx context.Context, id string) (*models.ClientResponse, error)
	List(ctx context.Context) (*models.ClientListResponse, error)
	Update(ctx context.Context, id string, req *models.UpdateClientRequest) (*models.ClientResponse, error)
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package admin_services

import (
	"context"

	"github.com/mundoinsolito/manicura/internal/service/catalog/models"
)

type CatalogService interface {
	Create(ctx context.Context, req *models.SaveServiceRequest) (*models.ServiceResponse, error)
	GetByID(ctx context.Context, id string) (*models.ServiceResponse, error)
	List(ctx context.Context, onlyActive bool) (*models.ServiceListResponse, error)
	Update(ctx context.Context, id string, req *models.SaveServiceRequest) (*models.ServiceResponse, error)
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

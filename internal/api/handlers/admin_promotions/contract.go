package admin_promotions

import (
	"context"

	"github.com/mundoinsolito/manicura/internal/service/promotions/models"
)

type PromotionsService interface {
	Create(ctx context.Context, req *models.SavePromotionRequest) (*models.PromotionResponse, error)
	List(ctx context.Context) (*models.PromotionListResponse, error)
	Update(ctx context.Context, id string, req *models.SavePromotionRequest) (*models.PromotionResponse, error)
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

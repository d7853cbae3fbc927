package site

import (
	"context"

	catalogModels "github.com/mundoinsolito/manicura/internal/service/catalog/models"
	promotionModels "github.com/mundoinsolito/manicura/internal/service/promotions/models"
	settingsModels "github.com/mundoinsolito/manicura/internal/service/settings/models"
)

type SettingsService interface {
	GetSite(ctx context.Context) (*settingsModels.SiteResponse, error)
}

type CatalogService interface {
	List(ctx context.Context, onlyActive bool) (*catalogModels.ServiceListResponse, error)
}

type PromotionsService interface {
	ListCurrent(ctx context.Context) (*promotionModels.PromotionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

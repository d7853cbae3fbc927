package promotions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mundoinsolito/manicura/internal/domain"
	promotionRepo "github.com/mundoinsolito/manicura/internal/infra/storage/promotion"
	"github.com/mundoinsolito/manicura/internal/service/promotions/models"
)

// Service сервис для работы с промоакциями
type Service struct {
	promotionRepo PromotionRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса промоакций
func NewService(promotionRepo PromotionRepository, logger Logger) *Service {
	return &Service{
		promotionRepo: promotionRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Create создает промоакцию
func (s *Service) Create(ctx context.Context, req *models.SavePromotionRequest) (*models.PromotionResponse, error) {
	s.logger.Info("Create: creating promotion title=%s", req.Title)

	p, err := s.validateAndConvert(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.promotionRepo.Create(ctx, p)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created promotion id=%s", created.ID)
	return models.FromDomainPromotion(created), nil
}

// ListCurrent получает промоакции, действующие сегодня (публичная витрина)
func (s *Service) ListCurrent(ctx context.Context) (*models.PromotionListResponse, error) {
	promotions, err := s.promotionRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ListCurrent: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCurrent - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	current := make([]*domain.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if p.IsCurrent(now) {
			current = append(current, p)
		}
	}

	s.logger.Info("ListCurrent: %d of %d promotions are current", len(current), len(promotions))
	return models.FromDomainPromotionList(current), nil
}

// List получает все промоакции (админка)
func (s *Service) List(ctx context.Context) (*models.PromotionListResponse, error) {
	promotions, err := s.promotionRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPromotionList(promotions), nil
}

// Update обновляет промоакцию
func (s *Service) Update(ctx context.Context, id string, req *models.SavePromotionRequest) (*models.PromotionResponse, error) {
	s.logger.Info("Update: updating promotion id=%s", id)

	p, err := s.validateAndConvert(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for promotion id=%s: %v", id, err)
		return nil, err
	}

	if err := s.promotionRepo.Update(ctx, id, p); err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Update: promotion id=%s not found", id)
			return nil, ErrPromotionNotFound
		}
		s.logger.Error("Update: repository error for promotion id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	p.ID = id
	s.logger.Info("Update: successfully updated promotion id=%s", id)
	return models.FromDomainPromotion(p), nil
}

// Delete удаляет промоакцию
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting promotion id=%s", id)

	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Delete: promotion id=%s not found", id)
			return ErrPromotionNotFound
		}
		s.logger.Error("Delete: repository error for promotion id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted promotion id=%s", id)
	return nil
}

func (s *Service) validateAndConvert(req *models.SavePromotionRequest) (*domain.Promotion, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.DiscountPercent != nil && (*req.DiscountPercent < 0 || *req.DiscountPercent > 100) {
		return nil, fmt.Errorf("%w: discountPercent must be between 0 and 100", ErrInvalidInput)
	}
	if req.DiscountAmount != nil && *req.DiscountAmount < 0 {
		return nil, fmt.Errorf("%w: discountAmount must not be negative", ErrInvalidInput)
	}

	p, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: dates must use format %s", ErrInvalidInput, domain.DateFormat)
	}

	if p.ValidUntil.Before(p.ValidFrom) {
		return nil, ErrInvalidValidityWindow
	}

	return p, nil
}

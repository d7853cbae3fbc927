package models

import (
	"time"

	"github.com/mundoinsolito/manicura/internal/domain"
)

// Request модели

// SavePromotionRequest запрос на создание или обновление промоакции
type SavePromotionRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ImageURL        *string  `json:"imageUrl,omitempty"`
	ServiceID       *string  `json:"serviceId,omitempty"`
	OriginalPrice   *float64 `json:"originalPrice,omitempty"`
	DiscountPercent *float64 `json:"discountPercent,omitempty"`
	DiscountAmount  *float64 `json:"discountAmount,omitempty"`
	ValidFrom       string   `json:"validFrom"`  // "2025-06-01"
	ValidUntil      string   `json:"validUntil"` // "2025-06-30"
	IsActive        bool     `json:"isActive"`
}

// ToDomain конвертирует запрос в domain модель
func (r *SavePromotionRequest) ToDomain() (*domain.Promotion, error) {
	validFrom, err := time.Parse(domain.DateFormat, r.ValidFrom)
	if err != nil {
		return nil, err
	}
	validUntil, err := time.Parse(domain.DateFormat, r.ValidUntil)
	if err != nil {
		return nil, err
	}

	return &domain.Promotion{
		Title:           r.Title,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		ServiceID:       r.ServiceID,
		OriginalPrice:   r.OriginalPrice,
		DiscountPercent: r.DiscountPercent,
		DiscountAmount:  r.DiscountAmount,
		ValidFrom:       validFrom,
		ValidUntil:      validUntil,
		IsActive:        r.IsActive,
	}, nil
}

// Response модели

// PromotionResponse ответ с данными промоакции
type PromotionResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ImageURL        *string  `json:"imageUrl,omitempty"`
	ServiceID       *string  `json:"serviceId,omitempty"`
	ServiceName     *string  `json:"serviceName,omitempty"`
	OriginalPrice   *float64 `json:"originalPrice,omitempty"`
	DiscountPercent *float64 `json:"discountPercent,omitempty"`
	DiscountAmount  *float64 `json:"discountAmount,omitempty"`
	EffectivePrice  float64  `json:"effectivePrice"`
	ValidFrom       string   `json:"validFrom"`
	ValidUntil      string   `json:"validUntil"`
	IsActive        bool     `json:"isActive"`
}

// PromotionListResponse ответ со списком промоакций
type PromotionListResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
}

// Методы конвертации

// FromDomainPromotion конвертирует domain модель в DTO
func FromDomainPromotion(p *domain.Promotion) *PromotionResponse {
	if p == nil {
		return nil
	}

	resp := &PromotionResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		ImageURL:        p.ImageURL,
		ServiceID:       p.ServiceID,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent,
		DiscountAmount:  p.DiscountAmount,
		EffectivePrice:  p.EffectivePrice(),
		ValidFrom:       p.ValidFrom.Format(domain.DateFormat),
		ValidUntil:      p.ValidUntil.Format(domain.DateFormat),
		IsActive:        p.IsActive,
	}
	if p.Service != nil {
		resp.ServiceName = &p.Service.Name
	}
	return resp
}

// FromDomainPromotionList конвертирует список domain моделей в DTO
func FromDomainPromotionList(promotions []*domain.Promotion) *PromotionListResponse {
	resp := &PromotionListResponse{
		Promotions: make([]PromotionResponse, 0, len(promotions)),
	}
	for _, p := range promotions {
		resp.Promotions = append(resp.Promotions, *FromDomainPromotion(p))
	}
	return resp
}

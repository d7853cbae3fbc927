package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/mundoinsolito/manicura/internal/domain"
	settingsRepo "github.com/mundoinsolito/manicura/internal/infra/storage/settings"
	"github.com/mundoinsolito/manicura/internal/service/settings/models"
)

// Service сервис настроек салона
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get получает настройки салона
// Пока администратор ничего не сохранил, действуют настройки по умолчанию
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	current, err := s.getDomain(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSettings(current), nil
}

// GetSite получает публичные данные салона для витрины
func (s *Service) GetSite(ctx context.Context) (*models.SiteResponse, error) {
	current, err := s.getDomain(ctx)
	if err != nil {
		return nil, err
	}
	return models.SiteFromDomainSettings(current), nil
}

// Update сохраняет настройки салона
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: saving settings, mode=%s, hours=%s-%s, interval=%d",
		req.ScheduleMode, req.OpeningTime, req.ClosingTime, req.TimeSlotInterval)

	updated := req.ToDomain()
	if err := validateSettings(updated); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.settingsRepo.Upsert(ctx, updated); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved")
	return models.FromDomainSettings(updated), nil
}

func (s *Service) getDomain(ctx context.Context) (*domain.Settings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("Get: settings not saved yet, using defaults")
			return domain.DefaultSettings(), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return current, nil
}

func validateSettings(s *domain.Settings) error {
	if s.BusinessName == "" {
		return fmt.Errorf("%w: businessName is required", ErrInvalidInput)
	}
	if err := s.OpeningTime.Validate(); err != nil {
		return fmt.Errorf("%w: openingTime: %v", ErrInvalidInput, err)
	}
	if err := s.ClosingTime.Validate(); err != nil {
		return fmt.Errorf("%w: closingTime: %v", ErrInvalidInput, err)
	}
	if !s.OpeningTime.IsBefore(s.ClosingTime) {
		return ErrInvalidBusinessHours
	}
	if s.TimeSlotInterval < domain.MinSlotIntervalMinutes || s.TimeSlotInterval > domain.MaxSlotIntervalMinutes {
		return fmt.Errorf("%w: timeSlotInterval must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}
	if !s.ScheduleMode.Valid() {
		return fmt.Errorf("%w: scheduleMode must be %q or %q",
			ErrInvalidInput, domain.ScheduleModeInterval, domain.ScheduleModeManual)
	}
	if s.ReservationAmount < 0 {
		return fmt.Errorf("%w: reservationAmount must not be negative", ErrInvalidInput)
	}
	for _, h := range s.ManualHours {
		if err := h.Validate(); err != nil {
			return fmt.Errorf("%w: manualHours entry %q: %v", ErrInvalidInput, h, err)
		}
	}
	return nil
}

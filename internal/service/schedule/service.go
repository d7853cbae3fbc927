package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mundoinsolito/manicura/internal/domain"
	blockedRepo "github.com/mundoinsolito/manicura/internal/infra/storage/blockedtime"
	scheduleRepo "github.com/mundoinsolito/manicura/internal/infra/storage/customschedule"
	"github.com/mundoinsolito/manicura/internal/service/schedule/models"
)

// Service сервис управления расписанием: блокировки и расписания на даты
type Service struct {
	blockedRepo  BlockedTimeRepository
	scheduleRepo CustomScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	blockedRepo BlockedTimeRepository,
	scheduleRepo CustomScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		blockedRepo:  blockedRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// CreateBlockedTime блокирует интервал или весь день
func (s *Service) CreateBlockedTime(ctx context.Context, req *models.CreateBlockedTimeRequest) (*models.BlockedTimeResponse, error) {
	s.logger.Info("CreateBlockedTime: date=%s, fullDay=%t", req.Date, req.FullDay)

	bt, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateBlockedTime: invalid date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date must use format %s", ErrInvalidInput, domain.DateFormat)
	}

	if err := validateBlockedTime(bt); err != nil {
		s.logger.Warn("CreateBlockedTime: validation failed: %v", err)
		return nil, err
	}

	created, err := s.blockedRepo.Create(ctx, bt)
	if err != nil {
		s.logger.Error("CreateBlockedTime: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlockedTime - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedTime: successfully created blocked time id=%s", created.ID)
	return models.FromDomainBlockedTime(created), nil
}

// ListBlockedTimes получает все блокировки
func (s *Service) ListBlockedTimes(ctx context.Context) (*models.BlockedTimeListResponse, error) {
	blocked, err := s.blockedRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBlockedTimes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedTimes - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedTimeList(blocked), nil
}

// DeleteBlockedTime удаляет блокировку
func (s *Service) DeleteBlockedTime(ctx context.Context, id string) error {
	s.logger.Info("DeleteBlockedTime: deleting blocked time id=%s", id)

	if err := s.blockedRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedTimeNotFound) {
			s.logger.Warn("DeleteBlockedTime: blocked time id=%s not found", id)
			return ErrBlockedTimeNotFound
		}
		s.logger.Error("DeleteBlockedTime: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteBlockedTime - repository error: %v", ErrInternal, err)
	}

	return nil
}

// SaveCustomSchedule сохраняет расписание на дату, заменяя существующее
// Пустой список часов закрывает день
func (s *Service) SaveCustomSchedule(ctx context.Context, req *models.SaveCustomScheduleRequest) (*models.CustomScheduleResponse, error) {
	s.logger.Info("SaveCustomSchedule: date=%s, hours=%d", req.Date, len(req.Hours))

	cs, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("SaveCustomSchedule: invalid date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date must use format %s", ErrInvalidInput, domain.DateFormat)
	}

	for _, h := range cs.Hours {
		if err := h.Validate(); err != nil {
			s.logger.Warn("SaveCustomSchedule: invalid hour %q: %v", h, err)
			return nil, fmt.Errorf("%w: hour %q: %v", ErrInvalidInput, h, err)
		}
	}

	saved, err := s.scheduleRepo.Upsert(ctx, cs)
	if err != nil {
		s.logger.Error("SaveCustomSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: SaveCustomSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SaveCustomSchedule: successfully saved schedule id=%s for date=%s", saved.ID, req.Date)
	return models.FromDomainCustomSchedule(saved), nil
}

// ListCustomSchedules получает все расписания на даты
func (s *Service) ListCustomSchedules(ctx context.Context) (*models.CustomScheduleListResponse, error) {
	schedules, err := s.scheduleRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCustomSchedules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCustomSchedules - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomScheduleList(schedules), nil
}

// DeleteCustomSchedule удаляет расписание на дату
// День возвращается к общим правилам генерации слотов
func (s *Service) DeleteCustomSchedule(ctx context.Context, date string) error {
	s.logger.Info("DeleteCustomSchedule: deleting schedule for date=%s", date)

	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		s.logger.Warn("DeleteCustomSchedule: invalid date=%s: %v", date, err)
		return fmt.Errorf("%w: date must use format %s", ErrInvalidInput, domain.DateFormat)
	}

	if err := s.scheduleRepo.DeleteByDate(ctx, parsed); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("DeleteCustomSchedule: schedule for date=%s not found", date)
			return ErrScheduleNotFound
		}
		s.logger.Error("DeleteCustomSchedule: repository error for date=%s: %v", date, err)
		return fmt.Errorf("%w: DeleteCustomSchedule - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateBlockedTime(bt *domain.BlockedTime) error {
	if bt.FullDay {
		return nil
	}
	if err := bt.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	if err := bt.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}
	if !bt.StartTime.IsBefore(bt.EndTime) {
		return ErrInvalidTimeRange
	}
	return nil
}

package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mundoinsolito/manicura/internal/availability"
	"github.com/mundoinsolito/manicura/internal/domain"
	scheduleRepo "github.com/mundoinsolito/manicura/internal/infra/storage/customschedule"
	settingsRepo "github.com/mundoinsolito/manicura/internal/infra/storage/settings"
	"github.com/mundoinsolito/manicura/pkg/types"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	blockedRepo     BlockedTimeRepository
	scheduleRepo    CustomScheduleRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	blockedRepo BlockedTimeRepository,
	scheduleRepo CustomScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		blockedRepo:     blockedRepo,
		scheduleRepo:    scheduleRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, duration=%d",
		req.Date.Format(domain.DateFormat), req.RequestedDuration)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем входные данные расчета
	availReq, err := uc.buildAvailabilityRequest(ctx, req.Date, req.RequestedDuration)
	if err != nil {
		return nil, err
	}

	// 3. Считаем доступные слоты
	slots, err := availability.Slots(*availReq)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidConfiguration) {
			uc.logger.Warn("GetAvailableSlots: invalid configuration: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		uc.logger.Error("GetAvailableSlots: engine error: %v", err)
		return nil, fmt.Errorf("%w: slots computation: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots available on %s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}

// buildAvailabilityRequest загружает настройки, переопределения, блокировки
// и занятые диапазоны на дату
func (uc *UseCase) buildAvailabilityRequest(ctx context.Context, date time.Time, duration int) (*availability.Request, error) {
	// Настройки салона (дефолтные, пока не сохранены)
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			settings = domain.DefaultSettings()
		} else {
			uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
	}

	// Расписание на дату (nil — переопределения нет)
	var customHours []types.TimeString
	custom, err := uc.scheduleRepo.GetByDate(ctx, date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get custom schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get custom schedule: %v", ErrInternal, err)
	}
	if custom != nil {
		// Пустой список часов остается пустым не-nil списком: день закрыт
		customHours = make([]types.TimeString, 0, len(custom.Hours))
		customHours = append(customHours, custom.Hours...)
	}

	// Блокировки на дату
	blockedTimes, err := uc.blockedRepo.GetByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
	}
	blocked := make([]availability.Block, 0, len(blockedTimes))
	for _, bt := range blockedTimes {
		blocked = append(blocked, availability.Block{
			Start:   bt.StartTime,
			End:     bt.EndTime,
			FullDay: bt.FullDay,
		})
	}

	// Неотмененные записи на дату
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	occupied := make([]availability.Occupied, 0, len(appointments))
	for _, a := range appointments {
		occupied = append(occupied, availability.Occupied{
			Start:    a.Time,
			Duration: a.OccupiedDuration(),
		})
	}

	return &availability.Request{
		Date:              date,
		RequestedDuration: duration,
		Hours: availability.Hours{
			Opening:     settings.OpeningTime,
			Closing:     settings.ClosingTime,
			Interval:    settings.TimeSlotInterval,
			Mode:        settings.ScheduleMode,
			ManualHours: settings.ManualHours,
		},
		CustomSchedule: customHours,
		Blocked:        blocked,
		Occupied:       occupied,
		Now:            uc.timeProvider.Now(),
	}, nil
}

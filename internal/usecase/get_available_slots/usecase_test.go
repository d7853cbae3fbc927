package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mundoinsolito/manicura/internal/domain"
	scheduleRepo "github.com/mundoinsolito/manicura/internal/infra/storage/customschedule"
	settingsRepo "github.com/mundoinsolito/manicura/internal/infra/storage/settings"
	"github.com/mundoinsolito/manicura/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	lastFilter   domain.AppointmentsFilter
	err          error
}

// GetWithFilter повторяет контракт репозитория: отмененные записи
// скрыты, пока фильтр явно их не запросит
func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	visible := make([]*domain.Appointment, 0, len(f.appointments))
	for _, a := range f.appointments {
		if !filter.IncludeCancelled && a.IsCancelled() {
			continue
		}
		visible = append(visible, a)
	}
	return visible, nil
}

type fakeSettingsRepo struct {
	settings *domain.Settings
	err      error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	return f.settings, f.err
}

type fakeBlockedRepo struct {
	blocked []*domain.BlockedTime
	err     error
}

func (f *fakeBlockedRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.BlockedTime, error) {
	return f.blocked, f.err
}

type fakeScheduleRepo struct {
	schedule *domain.CustomSchedule
	err      error
}

func (f *fakeScheduleRepo) GetByDate(_ context.Context, _ time.Time) (*domain.CustomSchedule, error) {
	if f.schedule == nil && f.err == nil {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return f.schedule, f.err
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func defaultFakeSettings() *domain.Settings {
	s := domain.DefaultSettings()
	s.OpeningTime = "09:00"
	s.ClosingTime = "12:00"
	s.TimeSlotInterval = 30
	return s
}

func newTestUseCase(
	appointments *fakeAppointmentRepo,
	settings *fakeSettingsRepo,
	blocked *fakeBlockedRepo,
	schedule *fakeScheduleRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(appointments, settings, blocked, schedule, nopLogger{})
	uc.timeProvider = &fixedTime{t: now}
	return uc
}

func TestExecute_IntervalGeneration(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeSettingsRepo{settings: defaultFakeSettings()},
		&fakeBlockedRepo{},
		&fakeScheduleRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, RequestedDuration: 30})
	require.NoError(t, err)

	expected := []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	assert.Equal(t, expected, resp.Slots)
}

func TestExecute_OccupiedSlotExcluded(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	appointments := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				Time:    "10:00",
				Service: &domain.Service{Duration: 60},
			},
		},
	}

	uc := newTestUseCase(
		appointments,
		&fakeSettingsRepo{settings: defaultFakeSettings()},
		&fakeBlockedRepo{},
		&fakeScheduleRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, RequestedDuration: 30})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:30"))
	assert.Contains(t, resp.Slots, types.TimeString("09:30"))
	assert.Contains(t, resp.Slots, types.TimeString("11:00"))
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	appointments := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				Time:    "10:00",
				Status:  domain.StatusCancelled,
				Service: &domain.Service{Duration: 60},
			},
		},
	}

	uc := newTestUseCase(
		appointments,
		&fakeSettingsRepo{settings: defaultFakeSettings()},
		&fakeBlockedRepo{},
		&fakeScheduleRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, RequestedDuration: 30})
	require.NoError(t, err)

	// Отмененная запись не занимает слот
	assert.False(t, appointments.lastFilter.IncludeCancelled)
	assert.Contains(t, resp.Slots, types.TimeString("10:00"))
	assert.Contains(t, resp.Slots, types.TimeString("10:30"))
}

func TestExecute_CustomScheduleWins(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	schedule := &fakeScheduleRepo{
		schedule: &domain.CustomSchedule{
			Date:  date,
			Hours: []types.TimeString{"10:00", "11:15"},
		},
	}

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeSettingsRepo{settings: defaultFakeSettings()},
		&fakeBlockedRepo{},
		schedule,
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	// Кастомное расписание заменяет генерацию, фильтры действуют как обычно
	assert.Equal(t, []types.TimeString{"10:00", "11:15"}, resp.Slots)
}

func TestExecute_EmptyCustomScheduleClosesDay(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	schedule := &fakeScheduleRepo{
		schedule: &domain.CustomSchedule{Date: date, Hours: []types.TimeString{}},
	}

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeSettingsRepo{settings: defaultFakeSettings()},
		&fakeBlockedRepo{},
		schedule,
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_FullDayBlock(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	blocked := &fakeBlockedRepo{
		blocked: []*domain.BlockedTime{{Date: date, FullDay: true}},
	}

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeSettingsRepo{settings: defaultFakeSettings()},
		blocked,
		&fakeScheduleRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_SettingsNotSavedUsesDefaults(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		&fakeBlockedRepo{},
		&fakeScheduleRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	// Дефолтные часы 09:00-18:00 с шагом 30 дают слоты
	assert.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeSettingsRepo{settings: defaultFakeSettings()},
		&fakeBlockedRepo{},
		&fakeScheduleRepo{},
		time.Now(),
	)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{
		Date:              time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		RequestedDuration: -10,
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecute_InvalidConfiguration(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	settings := defaultFakeSettings()
	settings.OpeningTime = "завтрак"

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeSettingsRepo{settings: settings},
		&fakeBlockedRepo{},
		&fakeScheduleRepo{},
		time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), &Request{Date: date})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mundoinsolito/manicura/internal/domain"
	clientRepo "github.com/mundoinsolito/manicura/internal/infra/storage/client"
	scheduleRepo "github.com/mundoinsolito/manicura/internal/infra/storage/customschedule"
	serviceRepo "github.com/mundoinsolito/manicura/internal/infra/storage/service"
	"github.com/mundoinsolito/manicura/pkg/ptr"
	"github.com/mundoinsolito/manicura/pkg/types"
)

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	created  *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	a.ID = "apt-1"
	a.CreatedAt = time.Now()
	f.created = a
	return a, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeClientRepo struct {
	byCedula map[string]*domain.Client
	created  *domain.Client
	updated  *domain.Client
}

func (f *fakeClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	c.ID = "client-1"
	f.created = c
	return c, nil
}

func (f *fakeClientRepo) GetByCedula(_ context.Context, cedula string) (*domain.Client, error) {
	if c, ok := f.byCedula[cedula]; ok {
		return c, nil
	}
	return nil, clientRepo.ErrClientNotFound
}

func (f *fakeClientRepo) Update(_ context.Context, _ string, c *domain.Client) error {
	f.updated = c
	return nil
}

type fakeServiceRepo struct {
	services map[string]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id string) (*domain.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, serviceRepo.ErrServiceNotFound
}

type fakeSettingsRepo struct {
	settings *domain.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	return f.settings, nil
}

type fakeBlockedRepo struct {
	blocked []*domain.BlockedTime
}

func (f *fakeBlockedRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.BlockedTime, error) {
	return f.blocked, nil
}

type fakeScheduleRepo struct {
	schedule *domain.CustomSchedule
}

func (f *fakeScheduleRepo) GetByDate(_ context.Context, _ time.Time) (*domain.CustomSchedule, error) {
	if f.schedule == nil {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return f.schedule, nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
)

func testService() *domain.Service {
	return &domain.Service{
		ID:       "svc-1",
		Name:     "Manicura clásica",
		Price:    25,
		Duration: 60,
		IsActive: true,
	}
}

func testSettings() *domain.Settings {
	s := domain.DefaultSettings()
	s.OpeningTime = "09:00"
	s.ClosingTime = "18:00"
	s.TimeSlotInterval = 30
	s.ReservationAmount = 10
	s.WhatsAppNumber = "+58 412 123-4567"
	return s
}

func newTestUseCase(apts *fakeAppointmentRepo, clients *fakeClientRepo) *UseCase {
	uc := NewUseCase(
		apts,
		clients,
		&fakeServiceRepo{services: map[string]*domain.Service{"svc-1": testService()}},
		&fakeSettingsRepo{settings: testSettings()},
		&fakeBlockedRepo{},
		&fakeScheduleRepo{},
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{t: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		Cedula:      "V-12345678",
		Name:        "María Pérez",
		Phone:       "+584121234567",
		ServiceID:   "svc-1",
		Date:        testDate,
		Time:        "10:00",
		PaymentType: PaymentTypePartial,
	}
}

func TestExecute_CreatesAppointmentAndClient(t *testing.T) {
	apts := &fakeAppointmentRepo{}
	clients := &fakeClientRepo{byCedula: map[string]*domain.Client{}}
	uc := newTestUseCase(apts, clients)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, clients.created)
	assert.Equal(t, "V-12345678", clients.created.Cedula)

	require.NotNil(t, apts.created)
	assert.Equal(t, "client-1", apts.created.ClientID)
	assert.Equal(t, domain.StatusPending, apts.created.Status)
	assert.Equal(t, domain.PaymentPending, apts.created.PaymentStatus)

	assert.Equal(t, "apt-1", resp.AppointmentID)
	assert.Equal(t, 25.0, resp.TotalAmount)
	assert.Equal(t, 10.0, resp.DepositAmount)
}

func TestExecute_FullPaymentTakesTotal(t *testing.T) {
	apts := &fakeAppointmentRepo{}
	uc := newTestUseCase(apts, &fakeClientRepo{byCedula: map[string]*domain.Client{}})

	req := validRequest()
	req.PaymentType = PaymentTypeFull

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 25.0, resp.DepositAmount)
	assert.Equal(t, 25.0, apts.created.PaymentAmount)
}

func TestExecute_ReturningClientUpdatesCard(t *testing.T) {
	existing := &domain.Client{
		ID:     "client-7",
		Name:   "Maria",
		Phone:  "0412000",
		Cedula: "V-12345678",
	}
	clients := &fakeClientRepo{byCedula: map[string]*domain.Client{"V-12345678": existing}}
	apts := &fakeAppointmentRepo{}
	uc := newTestUseCase(apts, clients)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, clients.updated)
	assert.Equal(t, "María Pérez", clients.updated.Name)
	assert.Nil(t, clients.created)
	assert.Equal(t, "client-7", apts.created.ClientID)
}

func TestExecute_SlotTakenRejected(t *testing.T) {
	apts := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{
				Time:    "10:00",
				Service: &domain.Service{Duration: 60},
			},
		},
	}
	uc := newTestUseCase(apts, &fakeClientRepo{byCedula: map[string]*domain.Client{}})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, apts.created)
}

func TestExecute_OverlappingSlotRejected(t *testing.T) {
	// Занято 09:30 на 60 минут: старт 10:00 пересекается
	apts := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{
				Time:    "09:30",
				Service: &domain.Service{Duration: 60},
			},
		},
	}
	uc := newTestUseCase(apts, &fakeClientRepo{byCedula: map[string]*domain.Client{}})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_PastMomentRejected(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeClientRepo{byCedula: map[string]*domain.Client{}})

	req := validRequest()
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeClientRepo{byCedula: map[string]*domain.Client{}})

	req := validRequest()
	req.ServiceID = "missing"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveServiceRejected(t *testing.T) {
	inactive := testService()
	inactive.IsActive = false

	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeClientRepo{byCedula: map[string]*domain.Client{}},
		&fakeServiceRepo{services: map[string]*domain.Service{"svc-1": inactive}},
		&fakeSettingsRepo{settings: testSettings()},
		&fakeBlockedRepo{},
		&fakeScheduleRepo{},
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{t: testNow}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeClientRepo{byCedula: map[string]*domain.Client{}})

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"empty cedula", func(r *Request) { r.Cedula = "" }},
		{"empty name", func(r *Request) { r.Name = "" }},
		{"empty phone", func(r *Request) { r.Phone = "" }},
		{"empty service", func(r *Request) { r.ServiceID = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"bad time", func(r *Request) { r.Time = "10h00" }},
		{"bad payment type", func(r *Request) { r.PaymentType = "credit" }},
		{"negative total", func(r *Request) { r.TotalAmount = -5 }},
		{"long notes", func(r *Request) {
			long := make([]byte, domain.MaxNotesLength+1)
			for i := range long {
				long[i] = 'a'
			}
			r.Notes = ptr.Ptr(string(long))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_WhatsAppLink(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeClientRepo{byCedula: map[string]*domain.Client{}})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Contains(t, resp.WhatsAppURL, "https://wa.me/584121234567?text=")
	assert.Contains(t, resp.WhatsAppURL, "Manicura+cl%C3%A1sica")
}

func TestExecute_SlotCheckUsesServiceDuration(t *testing.T) {
	// Услуга 60 минут: старт 17:30 не успевает до закрытия 18:00
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeClientRepo{byCedula: map[string]*domain.Client{}})

	req := validRequest()
	req.Time = types.TimeString("17:30")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func validAdminRequest() *AdminRequest {
	return &AdminRequest{
		Cedula:    "V-12345678",
		Name:      "María Pérez",
		Phone:     "+584121234567",
		ServiceID: "svc-1",
		Date:      testDate,
		Time:      "10:00",
	}
}

func TestExecuteAdmin_CreatesConfirmedAppointment(t *testing.T) {
	apts := &fakeAppointmentRepo{}
	clients := &fakeClientRepo{byCedula: map[string]*domain.Client{}}
	uc := newTestUseCase(apts, clients)

	resp, err := uc.ExecuteAdmin(context.Background(), validAdminRequest())
	require.NoError(t, err)

	require.NotNil(t, apts.created)
	assert.Equal(t, domain.StatusConfirmed, apts.created.Status)
	assert.Equal(t, domain.PaymentPending, apts.created.PaymentStatus)
	assert.Equal(t, 25.0, apts.created.PaymentAmount)
	require.NotNil(t, apts.created.Notes)
	assert.Equal(t, "Cita creada por administrador", *apts.created.Notes)

	assert.Equal(t, "apt-1", resp.AppointmentID)
	assert.Equal(t, 25.0, resp.PaymentAmount)
	assert.Equal(t, "Manicura clásica", resp.ServiceName)
}

func TestExecuteAdmin_ExistingClientCardUntouched(t *testing.T) {
	existing := &domain.Client{
		ID:     "client-7",
		Name:   "Maria",
		Phone:  "0412000",
		Cedula: "V-12345678",
	}
	clients := &fakeClientRepo{byCedula: map[string]*domain.Client{"V-12345678": existing}}
	apts := &fakeAppointmentRepo{}
	uc := newTestUseCase(apts, clients)

	_, err := uc.ExecuteAdmin(context.Background(), validAdminRequest())
	require.NoError(t, err)

	assert.Nil(t, clients.created)
	assert.Nil(t, clients.updated)
	assert.Equal(t, "client-7", apts.created.ClientID)
}

func TestExecuteAdmin_NewClientRequiresNameAndPhone(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeClientRepo{byCedula: map[string]*domain.Client{}})

	req := validAdminRequest()
	req.Name = ""
	req.Phone = ""

	_, err := uc.ExecuteAdmin(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteAdmin_SlotTakenRejected(t *testing.T) {
	apts := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{
				Time:    "10:00",
				Service: &domain.Service{Duration: 60},
			},
		},
	}
	uc := newTestUseCase(apts, &fakeClientRepo{byCedula: map[string]*domain.Client{}})

	_, err := uc.ExecuteAdmin(context.Background(), validAdminRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, apts.created)
}

func TestExecuteAdmin_InactiveServiceAllowed(t *testing.T) {
	// Админ может записать клиента и на выключенную услугу
	inactive := testService()
	inactive.IsActive = false

	apts := &fakeAppointmentRepo{}
	uc := NewUseCase(
		apts,
		&fakeClientRepo{byCedula: map[string]*domain.Client{}},
		&fakeServiceRepo{services: map[string]*domain.Service{"svc-1": inactive}},
		&fakeSettingsRepo{settings: testSettings()},
		&fakeBlockedRepo{},
		&fakeScheduleRepo{},
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{t: testNow}

	_, err := uc.ExecuteAdmin(context.Background(), validAdminRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, apts.created.Status)
}

func TestExecuteAdmin_CustomNotesPreserved(t *testing.T) {
	apts := &fakeAppointmentRepo{}
	uc := newTestUseCase(apts, &fakeClientRepo{byCedula: map[string]*domain.Client{}})

	req := validAdminRequest()
	req.Notes = ptr.Ptr("cliente frecuente")

	_, err := uc.ExecuteAdmin(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, apts.created.Notes)
	assert.Equal(t, "cliente frecuente", *apts.created.Notes)
}

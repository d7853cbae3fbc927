package record_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mundoinsolito/manicura/internal/domain"
	appointmentRepo "github.com/mundoinsolito/manicura/internal/infra/storage/appointment"
)

type fakeAppointmentRepo struct {
	appointment *domain.Appointment

	updatedStatus domain.PaymentStatus
	updatedAmount float64
	updateCalled  bool
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	if f.appointment == nil || f.appointment.ID != id {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return f.appointment, nil
}

func (f *fakeAppointmentRepo) UpdatePayment(_ context.Context, _ string, status domain.PaymentStatus, amount float64) error {
	f.updateCalled = true
	f.updatedStatus = status
	f.updatedAmount = amount
	return nil
}

type fakeTransactionRepo struct {
	created *domain.Transaction
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	t.ID = "txn-1"
	f.created = t
	return t, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:            "apt-1",
		PaymentStatus: domain.PaymentPending,
		PaymentAmount: 10,
		Client:        &domain.Client{Name: "María Pérez"},
		Service:       &domain.Service{Name: "Manicura clásica"},
	}
}

func newTestUseCase(apts *fakeAppointmentRepo, txns *fakeTransactionRepo) *UseCase {
	uc := NewUseCase(apts, txns, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTime{t: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_RecordsIncomeForDifference(t *testing.T) {
	apts := &fakeAppointmentRepo{appointment: testAppointment()}
	txns := &fakeTransactionRepo{}
	uc := newTestUseCase(apts, txns)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "apt-1",
		PaymentStatus: "full",
		Amount:        25,
	})
	require.NoError(t, err)

	assert.True(t, apts.updateCalled)
	assert.Equal(t, domain.PaymentFull, apts.updatedStatus)
	assert.Equal(t, 25.0, apts.updatedAmount)

	require.NotNil(t, txns.created)
	assert.Equal(t, domain.TransactionIncome, txns.created.Type)
	assert.Equal(t, 15.0, txns.created.Amount)
	assert.Equal(t, "Pago completo de María Pérez - Manicura clásica", txns.created.Description)
	require.NotNil(t, txns.created.AppointmentID)
	assert.Equal(t, "apt-1", *txns.created.AppointmentID)

	assert.Equal(t, 15.0, resp.IncomeAmount)
	assert.Equal(t, "txn-1", resp.TransactionID)
}

func TestExecute_PartialPaymentDescription(t *testing.T) {
	apts := &fakeAppointmentRepo{appointment: testAppointment()}
	txns := &fakeTransactionRepo{}
	uc := newTestUseCase(apts, txns)

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "apt-1",
		PaymentStatus: "partial",
		Amount:        20,
	})
	require.NoError(t, err)

	require.NotNil(t, txns.created)
	assert.Equal(t, "Pago parcial (abono) de María Pérez - Manicura clásica", txns.created.Description)
	assert.Equal(t, 10.0, txns.created.Amount)
}

func TestExecute_NoIncomeWhenAmountDoesNotGrow(t *testing.T) {
	apts := &fakeAppointmentRepo{appointment: testAppointment()}
	txns := &fakeTransactionRepo{}
	uc := newTestUseCase(apts, txns)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "apt-1",
		PaymentStatus: "partial",
		Amount:        10,
	})
	require.NoError(t, err)

	assert.True(t, apts.updateCalled)
	assert.Nil(t, txns.created)
	assert.Zero(t, resp.IncomeAmount)
	assert.Empty(t, resp.TransactionID)
}

func TestExecute_NoIncomeWhenStatusPending(t *testing.T) {
	apts := &fakeAppointmentRepo{appointment: testAppointment()}
	txns := &fakeTransactionRepo{}
	uc := newTestUseCase(apts, txns)

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "apt-1",
		PaymentStatus: "pending",
		Amount:        50,
	})
	require.NoError(t, err)
	assert.Nil(t, txns.created)
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeTransactionRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "missing",
		PaymentStatus: "full",
		Amount:        25,
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{appointment: testAppointment()}, &fakeTransactionRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "apt-1",
		PaymentStatus: "settled",
		Amount:        25,
	})
	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)

	_, err = uc.Execute(context.Background(), &Request{
		AppointmentID: "apt-1",
		PaymentStatus: "full",
		Amount:        -1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

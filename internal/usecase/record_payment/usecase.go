package record_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/mundoinsolito/manicura/internal/domain"
	appointmentRepo "github.com/mundoinsolito/manicura/internal/infra/storage/appointment"
)

// Описание записи дохода в кассовой книге
const (
	incomeFullDescription    = "Pago completo de %s - %s"
	incomePartialDescription = "Pago parcial (abono) de %s - %s"
	unknownClientName        = "cliente"
	unknownServiceName       = "servicio"
)

// UseCase use case регистрации оплаты по записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	transactionRepo TransactionRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	transactionRepo TransactionRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case регистрации оплаты
// Обновление статуса и запись дохода происходят в одной транзакции:
// положительная разница к ранее зафиксированной сумме попадает в кассу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RecordPayment: appointment=%s, status=%s, amount=%.2f",
		req.AppointmentID, req.PaymentStatus, req.Amount)

	// 1. Валидация входных данных
	status := domain.PaymentStatus(req.PaymentStatus)
	if !status.Valid() {
		uc.logger.Warn("RecordPayment: invalid payment status=%s", req.PaymentStatus)
		return nil, ErrInvalidPaymentStatus
	}
	if req.AppointmentID == "" {
		return nil, fmt.Errorf("%w: appointmentId is required", ErrInvalidInput)
	}
	if req.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	resp := &Response{
		AppointmentID: req.AppointmentID,
		PaymentStatus: req.PaymentStatus,
		Amount:        req.Amount,
	}

	// 2. Обновляем оплату и фиксируем доход в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем текущее состояние записи
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RecordPayment: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RecordPayment: failed to get appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		oldAmount := appointment.PaymentAmount

		// 2.2. Обновляем статус и сумму оплаты
		if err := uc.appointmentRepo.UpdatePayment(txCtx, req.AppointmentID, status, req.Amount); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RecordPayment: failed to update payment for id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to update payment: %v", ErrInternal, err)
		}

		// 2.3. Положительная разница становится доходом
		diff := req.Amount - oldAmount
		if diff <= 0 || (status != domain.PaymentPartial && status != domain.PaymentFull) {
			return nil
		}

		now := uc.timeProvider.Now()
		created, err := uc.transactionRepo.Create(txCtx, &domain.Transaction{
			Type:          domain.TransactionIncome,
			Amount:        diff,
			Description:   incomeDescription(status, appointment),
			AppointmentID: &appointment.ID,
			Date:          now,
		})
		if err != nil {
			uc.logger.Error("RecordPayment: failed to create income transaction: %v", err)
			return fmt.Errorf("%w: failed to create income transaction: %v", ErrInternal, err)
		}

		resp.IncomeAmount = diff
		resp.TransactionID = created.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RecordPayment: appointment id=%s updated, income=%.2f",
		req.AppointmentID, resp.IncomeAmount)
	return resp, nil
}

func incomeDescription(status domain.PaymentStatus, appointment *domain.Appointment) string {
	clientName := unknownClientName
	if appointment.Client != nil {
		clientName = appointment.Client.Name
	}
	serviceName := unknownServiceName
	if appointment.Service != nil {
		serviceName = appointment.Service.Name
	}

	if status == domain.PaymentFull {
		return fmt.Sprintf(incomeFullDescription, clientName, serviceName)
	}
	return fmt.Sprintf(incomePartialDescription, clientName, serviceName)
}

package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mundoinsolito/manicura/internal/availability"
	"github.com/mundoinsolito/manicura/internal/domain"
	clientRepo "github.com/mundoinsolito/manicura/internal/infra/storage/client"
	scheduleRepo "github.com/mundoinsolito/manicura/internal/infra/storage/customschedule"
	serviceRepo "github.com/mundoinsolito/manicura/internal/infra/storage/service"
	settingsRepo "github.com/mundoinsolito/manicura/internal/infra/storage/settings"
	"github.com/mundoinsolito/manicura/pkg/types"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	serviceRepo     ServiceRepository
	settingsRepo    SettingsRepository
	blockedRepo     BlockedTimeRepository
	scheduleRepo    CustomScheduleRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	serviceRepo ServiceRepository,
	settingsRepo SettingsRepository,
	blockedRepo BlockedTimeRepository,
	scheduleRepo CustomScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		serviceRepo:     serviceRepo,
		settingsRepo:    settingsRepo,
		blockedRepo:     blockedRepo,
		scheduleRepo:    scheduleRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка доступности слота и вставка выполняются в сериализуемой
// транзакции с блокировкой записей даты, чтобы исключить двойное бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: cedula=%s, service=%s, date=%s, time=%s",
		req.Cedula, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и отклоняем прошедшие моменты
	now := uc.timeProvider.Now()
	if err := validateNotInPast(req.Date, req.Time, now); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%s is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 4. Получаем настройки салона
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			settings = domain.DefaultSettings()
		} else {
			uc.logger.Error("CreateAppointment: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
	}

	totalAmount := req.TotalAmount
	if totalAmount == 0 {
		totalAmount = service.Price
	}

	// Сумма к оплате: вся стоимость либо депозит, но не больше стоимости
	amountToPay := totalAmount
	if req.PaymentType == PaymentTypePartial {
		amountToPay = settings.ReservationAmount
		if amountToPay > totalAmount {
			amountToPay = totalAmount
		}
	}

	// Переменная для хранения результата
	var created *domain.Appointment

	// 5. Проверка слота и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Находим или создаем клиента по cédula
		client, err := uc.findOrCreateClient(txCtx, req)
		if err != nil {
			return err
		}

		// 5.2. Пересчитываем доступность внутри транзакции
		// Выборка записей даты берет FOR UPDATE и закрывает гонку
		slots, err := uc.computeSlots(txCtx, req.Date, service.Duration, settings, now)
		if err != nil {
			return err
		}

		if !containsSlot(slots, req.Time) {
			uc.logger.Warn("CreateAppointment: slot %s on %s is not available",
				req.Time, req.Date.Format(domain.DateFormat))
			return ErrSlotUnavailable
		}

		// 5.3. Создаем запись
		created, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:      client.ID,
			ServiceID:     service.ID,
			Date:          req.Date,
			Time:          req.Time,
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentPending,
			PaymentAmount: amountToPay,
			Notes:         req.Notes,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", created.ID)

	dateStr := req.Date.Format(domain.DateFormat)
	return &Response{
		AppointmentID: created.ID,
		Date:          req.Date,
		Time:          req.Time,
		ServiceName:   service.Name,
		TotalAmount:   totalAmount,
		DepositAmount: amountToPay,
		WhatsAppURL:   buildWhatsAppURL(settings, req.Name, req.Cedula, service.Name, dateStr, req.Time, amountToPay),
	}, nil
}

// adminCreatedNotes пометка по умолчанию для записей, созданных из админки
const adminCreatedNotes = "Cita creada por administrador"

// ExecuteAdmin создает запись из админки: статус сразу confirmed,
// ожидаемая оплата равна цене услуги. Слот перепроверяется в той же
// сериализуемой транзакции, что и при публичном бронировании
func (uc *UseCase) ExecuteAdmin(ctx context.Context, req *AdminRequest) (*AdminResponse, error) {
	uc.logger.Info("CreateAdminAppointment: cedula=%s, service=%s, date=%s, time=%s",
		req.Cedula, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateAdminRequest(req); err != nil {
		uc.logger.Warn("CreateAdminAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу (админ может записать и на выключенную)
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAdminAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAdminAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем настройки салона
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			settings = domain.DefaultSettings()
		} else {
			uc.logger.Error("CreateAdminAppointment: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
	}

	notes := req.Notes
	if notes == nil || strings.TrimSpace(*notes) == "" {
		defaultNotes := adminCreatedNotes
		notes = &defaultNotes
	}

	var created *domain.Appointment

	// 4. Проверка слота и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Ищем клиента по cédula; нового создаем, карточку
		// существующего не трогаем
		client, err := uc.findClientForAdmin(txCtx, req)
		if err != nil {
			return err
		}

		// 4.2. Пересчитываем доступность внутри транзакции
		slots, err := uc.computeSlots(txCtx, req.Date, service.Duration, settings, uc.timeProvider.Now())
		if err != nil {
			return err
		}

		if !containsSlot(slots, req.Time) {
			uc.logger.Warn("CreateAdminAppointment: slot %s on %s is not available",
				req.Time, req.Date.Format(domain.DateFormat))
			return ErrSlotUnavailable
		}

		// 4.3. Создаем сразу подтвержденную запись
		created, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:      client.ID,
			ServiceID:     service.ID,
			Date:          req.Date,
			Time:          req.Time,
			Status:        domain.StatusConfirmed,
			PaymentStatus: domain.PaymentPending,
			PaymentAmount: service.Price,
			Notes:         notes,
		})
		if err != nil {
			uc.logger.Error("CreateAdminAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAdminAppointment: successfully created appointment id=%s", created.ID)

	return &AdminResponse{
		AppointmentID: created.ID,
		ClientID:      created.ClientID,
		Date:          req.Date,
		Time:          req.Time,
		ServiceName:   service.Name,
		PaymentAmount: service.Price,
	}, nil
}

// findClientForAdmin ищет клиента по cédula; для нового требует имя и телефон
func (uc *UseCase) findClientForAdmin(ctx context.Context, req *AdminRequest) (*domain.Client, error) {
	client, err := uc.clientRepo.GetByCedula(ctx, req.Cedula)
	if err == nil {
		return client, nil
	}

	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		uc.logger.Error("CreateAdminAppointment: failed to get client cedula=%s: %v", req.Cedula, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		return nil, fmt.Errorf("%w: name and phone are required for a new client", ErrInvalidInput)
	}

	created, err := uc.clientRepo.Create(ctx, &domain.Client{
		Name:   req.Name,
		Phone:  req.Phone,
		Cedula: req.Cedula,
	})
	if err != nil {
		uc.logger.Error("CreateAdminAppointment: failed to create client cedula=%s: %v", req.Cedula, err)
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAdminAppointment: created new client id=%s for cedula=%s", created.ID, req.Cedula)
	return created, nil
}

// findOrCreateClient ищет клиента по cédula; при повторном визите
// обновляет имя и телефон в карточке
func (uc *UseCase) findOrCreateClient(ctx context.Context, req *Request) (*domain.Client, error) {
	client, err := uc.clientRepo.GetByCedula(ctx, req.Cedula)
	if err == nil {
		if client.Name != req.Name || client.Phone != req.Phone {
			client.Name = req.Name
			client.Phone = req.Phone
			if err := uc.clientRepo.Update(ctx, client.ID, client); err != nil {
				uc.logger.Error("CreateAppointment: failed to update client id=%s: %v", client.ID, err)
				return nil, fmt.Errorf("%w: failed to update client: %v", ErrInternal, err)
			}
		}
		return client, nil
	}

	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		uc.logger.Error("CreateAppointment: failed to get client cedula=%s: %v", req.Cedula, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	created, err := uc.clientRepo.Create(ctx, &domain.Client{
		Name:   req.Name,
		Phone:  req.Phone,
		Cedula: req.Cedula,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create client cedula=%s: %v", req.Cedula, err)
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created new client id=%s for cedula=%s", created.ID, req.Cedula)
	return created, nil
}

// computeSlots собирает данные даты и считает доступные слоты
func (uc *UseCase) computeSlots(ctx context.Context, date time.Time, duration int, settings *domain.Settings, now time.Time) ([]types.TimeString, error) {
	var customHours []types.TimeString
	custom, err := uc.scheduleRepo.GetByDate(ctx, date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("CreateAppointment: failed to get custom schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get custom schedule: %v", ErrInternal, err)
	}
	if custom != nil {
		customHours = make([]types.TimeString, 0, len(custom.Hours))
		customHours = append(customHours, custom.Hours...)
	}

	blockedTimes, err := uc.blockedRepo.GetByDate(ctx, date)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get blocked times: %v", err)
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

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	occupied := make([]availability.Occupied, 0, len(appointments))
	for _, a := range appointments {
		occupied = append(occupied, availability.Occupied{
			Start:    a.Time,
			Duration: a.OccupiedDuration(),
		})
	}

	slots, err := availability.Slots(availability.Request{
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
		Now:            now,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: slots computation failed: %v", err)
		return nil, fmt.Errorf("%w: slots computation: %v", ErrInternal, err)
	}

	return slots, nil
}

func containsSlot(slots []types.TimeString, t types.TimeString) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}

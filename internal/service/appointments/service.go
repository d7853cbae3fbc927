package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mundoinsolito/manicura/internal/domain"
	appointmentRepo "github.com/mundoinsolito/manicura/internal/infra/storage/appointment"
	clientRepo "github.com/mundoinsolito/manicura/internal/infra/storage/client"
	"github.com/mundoinsolito/manicura/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// List получает записи с фильтрацией по клиенту, периоду и статусу
func (s *Service) List(ctx context.Context, req *models.GetAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus обновляет статус записи
// Отмена освобождает слот: отмененные записи не учитываются при расчете доступности
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s", id, req.Status)

	status := domain.AppointmentStatus(req.Status)
	if !status.Valid() {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%s to status=%s", id, status)
	return nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting appointment id=%s", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%s", id)
	return nil
}

// GetClientStatus получает записи клиента по cédula (публичная проверка)
func (s *Service) GetClientStatus(ctx context.Context, cedula string) (*models.ClientStatusResponse, error) {
	cedula = strings.TrimSpace(cedula)
	if cedula == "" {
		return nil, fmt.Errorf("%w: cedula is required", ErrInvalidInput)
	}

	s.logger.Info("GetClientStatus: looking up client cedula=%s", cedula)

	client, err := s.clientRepo.GetByCedula(ctx, cedula)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetClientStatus: client cedula=%s not found", cedula)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetClientStatus: repository error for cedula=%s: %v", cedula, err)
		return nil, fmt.Errorf("%w: GetClientStatus - repository error: %v", ErrInternal, err)
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		ClientID: &client.ID,
	})
	if err != nil {
		s.logger.Error("GetClientStatus: repository error for client id=%s: %v", client.ID, err)
		return nil, fmt.Errorf("%w: GetClientStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientStatus: found %d appointments for cedula=%s", len(appointments), cedula)
	return models.ClientStatusFromDomain(client, appointments), nil
}

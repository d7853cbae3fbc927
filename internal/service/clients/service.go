package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	clientRepo "github.com/mundoinsolito/manicura/internal/infra/storage/client"
	"github.com/mundoinsolito/manicura/internal/service/clients/models"
)

// Service сервис для работы с клиентами
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create создает нового клиента
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Create: creating client cedula=%s", req.Cedula)

	if err := validateClientData(req.Name, req.Phone, req.Cedula); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	client, err := s.clientRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, clientRepo.ErrDuplicateCedula) {
			s.logger.Warn("Create: cedula=%s already registered", req.Cedula)
			return nil, ErrDuplicateCedula
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created client id=%s", client.ID)
	return models.FromDomainClient(client), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ClientResponse, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// GetByCedula получает клиента по cédula
func (s *Service) GetByCedula(ctx context.Context, cedula string) (*models.ClientResponse, error) {
	client, err := s.clientRepo.GetByCedula(ctx, strings.TrimSpace(cedula))
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByCedula: client cedula=%s not found", cedula)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByCedula: repository error for cedula=%s: %v", cedula, err)
		return nil, fmt.Errorf("%w: GetByCedula - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// List получает всех клиентов
func (s *Service) List(ctx context.Context) (*models.ClientListResponse, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// Update обновляет данные клиента
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Update: updating client id=%s", id)

	if err := validateClientData(req.Name, req.Phone, "-"); err != nil {
		s.logger.Warn("Update: validation failed for client id=%s: %v", id, err)
		return nil, err
	}

	current, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Update: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Update: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	current.Name = req.Name
	current.Phone = req.Phone
	current.Email = req.Email
	current.HealthAlerts = req.HealthAlerts
	current.Preferences = req.Preferences
	current.FavoriteColors = req.FavoriteColors
	current.NailShape = req.NailShape
	current.Notes = req.Notes

	if err := s.clientRepo.Update(ctx, id, current); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("Update: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated client id=%s", id)
	return models.FromDomainClient(current), nil
}

// Delete удаляет клиента
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting client id=%s", id)

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Delete: client id=%s not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("Delete: repository error for client id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted client id=%s", id)
	return nil
}

func validateClientData(name, phone, cedula string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if strings.TrimSpace(cedula) == "" {
		return fmt.Errorf("%w: cedula is required", ErrInvalidInput)
	}
	return nil
}

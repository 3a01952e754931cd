package service

import (
	"context"

	"github.com/spec-kit/legal-case-service/internal/domain"
	"github.com/spec-kit/legal-case-service/internal/repository"
	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

// ClientService coordinates client CRUD flows.
type ClientService struct {
	clients   repository.ClientRepository
	processes repository.ProcessRepository
}

// NewClientService constructs the service.
func NewClientService(clients repository.ClientRepository, processes repository.ProcessRepository) *ClientService {
	return &ClientService{clients: clients, processes: processes}
}

// ClientInput carries client attributes for create and update.
type ClientInput struct {
	Name     string
	Email    *string
	Phone    *string
	Document string
	Type     domain.ClientType
	Address  *string
	City     *string
	State    *string
	ZipCode  *string
	Notes    *string
}

// List returns active clients with pagination and optional search.
func (s *ClientService) List(ctx context.Context, filter repository.ClientFilter) ([]domain.Client, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.clients.List(ctx, filter)
}

// Get returns one active client along with its processes.
func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, []domain.Process, error) {
	client, err := s.clients.GetActiveByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil, apperrors.NewNotFound("client")
		}
		return nil, nil, err
	}
	processes, err := s.processes.ListByClient(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return client, processes, nil
}

// Create persists a new client.
func (s *ClientService) Create(ctx context.Context, input ClientInput) (*domain.Client, error) {
	if input.Type == "" {
		input.Type = domain.ClientTypePessoaFisica
	}
	client := &domain.Client{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Document: input.Document,
		Type:     input.Type,
		Address:  input.Address,
		City:     input.City,
		State:    input.State,
		ZipCode:  input.ZipCode,
		Notes:    input.Notes,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Update loads the client and overwrites the provided attributes.
func (s *ClientService) Update(ctx context.Context, id string, input ClientInput) (*domain.Client, error) {
	client, err := s.clients.GetActiveByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewNotFound("client")
		}
		return nil, err
	}

	if input.Name != "" {
		client.Name = input.Name
	}
	if input.Document != "" {
		client.Document = input.Document
	}
	if input.Type != "" {
		client.Type = input.Type
	}
	if input.Email != nil {
		client.Email = input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Address != nil {
		client.Address = input.Address
	}
	if input.City != nil {
		client.City = input.City
	}
	if input.State != nil {
		client.State = input.State
	}
	if input.ZipCode != nil {
		client.ZipCode = input.ZipCode
	}
	if input.Notes != nil {
		client.Notes = input.Notes
	}

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete marks the client inactive, preserving referential history.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.clients.SoftDelete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NewNotFound("client")
		}
		return err
	}
	return nil
}

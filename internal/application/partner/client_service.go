package partner

import (
	"context"
	"fmt"

	"github.com/sistemaempresa/backend/internal/domain/partner"
	"github.com/sistemaempresa/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ClientService handles client use cases
type ClientService struct {
	clientRepo partner.ClientRepository
	cities     CityLookup
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository, cities CityLookup) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		cities:     cities,
	}
}

// List returns clients matching the request, active only unless asked otherwise
func (s *ClientService) List(ctx context.Context, req ListRequest) ([]ClientResponse, error) {
	clients, err := s.clientRepo.FindAll(ctx, req.Filter())
	if err != nil {
		return nil, err
	}
	return toResponses(clients, ToClientResponse), nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, id int64) (*ClientResponse, error) {
	client, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToClientResponse(client)
	return &response, nil
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req ClientRequest) (*ClientResponse, error) {
	client, err := partner.NewClient(req.Name, req.CPF, req.CNPJ, req.AddressRequest.toDomain())
	if err != nil {
		return nil, err
	}
	client.Active = activeOr(req.Active, true)
	if err := s.validate(ctx, client); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Client created", zap.Int64("client_id", client.ID))
	return s.GetByID(ctx, client.ID)
}

// Update replaces the fields of an existing client
func (s *ClientService) Update(ctx context.Context, id int64, req ClientRequest) (*ClientResponse, error) {
	client, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := client.Update(req.Name, req.CPF, req.CNPJ, req.AddressRequest.toDomain(), activeOr(req.Active, client.Active)); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, client); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete deactivates a client
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if err := s.clientRepo.Deactivate(ctx, id); err != nil {
		return notFoundAs(err, clientNotFound(id))
	}
	logger.L(ctx).Info("Client deactivated", zap.Int64("client_id", id))
	return nil
}

func (s *ClientService) validate(ctx context.Context, client *partner.Client) error {
	if err := ensureCity(ctx, s.cities, client.CityID); err != nil {
		return err
	}
	return ensureUniqueDocuments(ctx, s.clientRepo, client.ID, client.CPF, client.CNPJ)
}

func (s *ClientService) find(ctx context.Context, id int64) (*partner.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, clientNotFound(id))
	}
	return client, nil
}

func clientNotFound(id int64) string {
	return fmt.Sprintf("Cliente não encontrado com o ID: %d", id)
}

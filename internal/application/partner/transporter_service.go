package partner

import (
	"context"
	"fmt"

	"github.com/sistemaempresa/backend/internal/domain/partner"
	"github.com/sistemaempresa/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// TransporterService handles transporter use cases
type TransporterService struct {
	transporterRepo partner.TransporterRepository
	cities          CityLookup
}

// NewTransporterService creates a new TransporterService
func NewTransporterService(transporterRepo partner.TransporterRepository, cities CityLookup) *TransporterService {
	return &TransporterService{
		transporterRepo: transporterRepo,
		cities:          cities,
	}
}

// List returns transporters matching the request, active only unless asked otherwise
func (s *TransporterService) List(ctx context.Context, req ListRequest) ([]TransporterResponse, error) {
	transporters, err := s.transporterRepo.FindAll(ctx, req.Filter())
	if err != nil {
		return nil, err
	}
	return toResponses(transporters, ToTransporterResponse), nil
}

// GetByID retrieves a transporter by ID
func (s *TransporterService) GetByID(ctx context.Context, id int64) (*TransporterResponse, error) {
	transporter, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToTransporterResponse(transporter)
	return &response, nil
}

// Create creates a new transporter
func (s *TransporterService) Create(ctx context.Context, req TransporterRequest) (*TransporterResponse, error) {
	transporter, err := partner.NewTransporter(req.CompanyName, req.TradeName, req.CNPJ, req.AddressRequest.toDomain())
	if err != nil {
		return nil, err
	}
	transporter.Active = activeOr(req.Active, true)
	if err := s.validate(ctx, transporter); err != nil {
		return nil, err
	}
	if err := s.transporterRepo.Save(ctx, transporter); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Transporter created", zap.Int64("transporter_id", transporter.ID))
	return s.GetByID(ctx, transporter.ID)
}

// Update replaces the fields of an existing transporter
func (s *TransporterService) Update(ctx context.Context, id int64, req TransporterRequest) (*TransporterResponse, error) {
	transporter, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := transporter.Update(req.CompanyName, req.TradeName, req.CNPJ, req.AddressRequest.toDomain(), activeOr(req.Active, transporter.Active)); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, transporter); err != nil {
		return nil, err
	}
	if err := s.transporterRepo.Save(ctx, transporter); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete deactivates a transporter
func (s *TransporterService) Delete(ctx context.Context, id int64) error {
	if err := s.transporterRepo.Deactivate(ctx, id); err != nil {
		return notFoundAs(err, transporterNotFound(id))
	}
	logger.L(ctx).Info("Transporter deactivated", zap.Int64("transporter_id", id))
	return nil
}

func (s *TransporterService) validate(ctx context.Context, transporter *partner.Transporter) error {
	if err := ensureCity(ctx, s.cities, transporter.CityID); err != nil {
		return err
	}
	return ensureUniqueDocuments(ctx, s.transporterRepo, transporter.ID, transporter.CNPJ)
}

func (s *TransporterService) find(ctx context.Context, id int64) (*partner.Transporter, error) {
	transporter, err := s.transporterRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, transporterNotFound(id))
	}
	return transporter, nil
}

func transporterNotFound(id int64) string {
	return fmt.Sprintf("Transportadora não encontrada com o ID: %d", id)
}

package partner

import (
	"context"
	"fmt"

	"github.com/sistemaempresa/backend/internal/domain/partner"
	"github.com/sistemaempresa/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// SupplierService handles supplier use cases
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	cities       CityLookup
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, cities CityLookup) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		cities:       cities,
	}
}

// List returns suppliers matching the request, active only unless asked otherwise
func (s *SupplierService) List(ctx context.Context, req ListRequest) ([]SupplierResponse, error) {
	suppliers, err := s.supplierRepo.FindAll(ctx, req.Filter())
	if err != nil {
		return nil, err
	}
	return toResponses(suppliers, ToSupplierResponse), nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id int64) (*SupplierResponse, error) {
	supplier, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req SupplierRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(req.CompanyName, req.TradeName, req.CNPJ, req.AddressRequest.toDomain())
	if err != nil {
		return nil, err
	}
	supplier.Active = activeOr(req.Active, true)
	if err := s.validate(ctx, supplier); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Supplier created", zap.Int64("supplier_id", supplier.ID))
	return s.GetByID(ctx, supplier.ID)
}

// Update replaces the fields of an existing supplier
func (s *SupplierService) Update(ctx context.Context, id int64, req SupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := supplier.Update(req.CompanyName, req.TradeName, req.CNPJ, req.AddressRequest.toDomain(), activeOr(req.Active, supplier.Active)); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, supplier); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete deactivates a supplier
func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	if err := s.supplierRepo.Deactivate(ctx, id); err != nil {
		return notFoundAs(err, supplierNotFound(id))
	}
	logger.L(ctx).Info("Supplier deactivated", zap.Int64("supplier_id", id))
	return nil
}

func (s *SupplierService) validate(ctx context.Context, supplier *partner.Supplier) error {
	if err := ensureCity(ctx, s.cities, supplier.CityID); err != nil {
		return err
	}
	return ensureUniqueDocuments(ctx, s.supplierRepo, supplier.ID, supplier.CNPJ)
}

func (s *SupplierService) find(ctx context.Context, id int64) (*partner.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, supplierNotFound(id))
	}
	return supplier, nil
}

func supplierNotFound(id int64) string {
	return fmt.Sprintf("Fornecedor não encontrado com o ID: %d", id)
}

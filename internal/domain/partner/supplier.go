package partner

import (
	"strings"
	"time"

	"github.com/sistemaempresa/backend/internal/domain/shared"
)

// Supplier is a company the business buys from (table fornecedores)
type Supplier struct {
	shared.BaseEntity
	CompanyName string // razao_social
	TradeName   string // nome_fantasia
	CNPJ        string
	Address
	Active bool
}

// NewSupplier creates a new active supplier. Suppliers must carry a valid CNPJ.
func NewSupplier(companyName, tradeName, cnpj string, address Address) (*Supplier, error) {
	s := &Supplier{BaseEntity: shared.NewBaseEntity(), Active: true}
	if err := s.apply(companyName, tradeName, cnpj, address); err != nil {
		return nil, err
	}
	return s, nil
}

// Update replaces the supplier's fields
func (s *Supplier) Update(companyName, tradeName, cnpj string, address Address, active bool) error {
	if err := s.apply(companyName, tradeName, cnpj, address); err != nil {
		return err
	}
	s.Active = active
	s.UpdatedAt = time.Now()
	return nil
}

func (s *Supplier) apply(companyName, tradeName, cnpj string, address Address) error {
	if err := required("A razão social é obrigatória", "Razão social", companyName, 150); err != nil {
		return err
	}
	if err := maxLength("Nome fantasia", strings.TrimSpace(tradeName), 100); err != nil {
		return err
	}
	if strings.TrimSpace(cnpj) == "" {
		return shared.NewDomainError("INVALID_CNPJ", "O CNPJ é obrigatório")
	}
	cnpj, err := optionalCNPJ(cnpj)
	if err != nil {
		return err
	}
	address.Normalize()
	if err := address.Validate(); err != nil {
		return err
	}

	s.CompanyName = normalizeName(companyName)
	s.TradeName = normalizeName(tradeName)
	s.CNPJ = cnpj
	s.Address = address
	return nil
}

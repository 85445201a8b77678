package partner

import (
	"strings"
	"time"

	"github.com/sistemaempresa/backend/internal/domain/shared"
)

// Transporter is a carrier used for deliveries (table transportadora)
type Transporter struct {
	shared.BaseEntity
	CompanyName string // razao_social
	TradeName   string // nome_fantasia
	CNPJ        string
	Address
	Active bool
}

// NewTransporter creates a new active transporter
func NewTransporter(companyName, tradeName, cnpj string, address Address) (*Transporter, error) {
	t := &Transporter{BaseEntity: shared.NewBaseEntity(), Active: true}
	if err := t.apply(companyName, tradeName, cnpj, address); err != nil {
		return nil, err
	}
	return t, nil
}

// Update replaces the transporter's fields
func (t *Transporter) Update(companyName, tradeName, cnpj string, address Address, active bool) error {
	if err := t.apply(companyName, tradeName, cnpj, address); err != nil {
		return err
	}
	t.Active = active
	t.UpdatedAt = time.Now()
	return nil
}

func (t *Transporter) apply(companyName, tradeName, cnpj string, address Address) error {
	if err := required("A razão social é obrigatória", "Razão social", companyName, 150); err != nil {
		return err
	}
	if err := maxLength("Nome fantasia", strings.TrimSpace(tradeName), 100); err != nil {
		return err
	}
	cnpj, err := optionalCNPJ(cnpj)
	if err != nil {
		return err
	}
	address.Normalize()
	if err := address.Validate(); err != nil {
		return err
	}

	t.CompanyName = normalizeName(companyName)
	t.TradeName = normalizeName(tradeName)
	t.CNPJ = cnpj
	t.Address = address
	return nil
}

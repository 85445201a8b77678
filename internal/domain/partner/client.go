// Package partner holds the business partners that reference a City:
// clients, suppliers, employees and transporters.
package partner

import (
	"strings"
	"time"

	"github.com/sistemaempresa/backend/internal/domain/shared"
)

// Client is a customer, individual (CPF) or company (CNPJ) (table cliente)
type Client struct {
	shared.BaseEntity
	Name string
	CPF  string
	CNPJ string
	Address
	Active bool
}

// NewClient creates a new active client
func NewClient(name, cpf, cnpj string, address Address) (*Client, error) {
	c := &Client{BaseEntity: shared.NewBaseEntity(), Active: true}
	if err := c.apply(name, cpf, cnpj, address); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the client's fields
func (c *Client) Update(name, cpf, cnpj string, address Address, active bool) error {
	if err := c.apply(name, cpf, cnpj, address); err != nil {
		return err
	}
	c.Active = active
	c.UpdatedAt = time.Now()
	return nil
}

// Document returns the CPF, or the CNPJ when no CPF is set
func (c *Client) Document() string {
	if c.CPF != "" {
		return c.CPF
	}
	return c.CNPJ
}

func (c *Client) apply(name, cpf, cnpj string, address Address) error {
	if err := required("O nome é obrigatório", "Nome", name, 100); err != nil {
		return err
	}
	cpf, err := optionalCPF(cpf)
	if err != nil {
		return err
	}
	cnpj, err = optionalCNPJ(cnpj)
	if err != nil {
		return err
	}
	address.Normalize()
	if err := address.Validate(); err != nil {
		return err
	}

	c.Name = normalizeName(name)
	c.CPF = cpf
	c.CNPJ = cnpj
	c.Address = address
	return nil
}

func optionalCPF(cpf string) (string, error) {
	if strings.TrimSpace(cpf) == "" {
		return "", nil
	}
	if !ValidCPF(cpf) {
		return "", shared.NewDomainError("INVALID_CPF", "CPF inválido")
	}
	return OnlyDigits(cpf), nil
}

func optionalCNPJ(cnpj string) (string, error) {
	if strings.TrimSpace(cnpj) == "" {
		return "", nil
	}
	if !ValidCNPJ(cnpj) {
		return "", shared.NewDomainError("INVALID_CNPJ", "CNPJ inválido")
	}
	return OnlyDigits(cnpj), nil
}

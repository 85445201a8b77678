package partner

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sistemaempresa/backend/internal/domain/shared"
)

// Employee is a person on the payroll (table funcionario)
type Employee struct {
	shared.BaseEntity
	Name      string
	CPF       string
	RG        string
	BirthDate *time.Time
	Address
	HireDate        *time.Time // data_admissao
	TerminationDate *time.Time // data_demissao
	Role            string     // cargo
	Salary          decimal.Decimal
	Active          bool
}

// EmployeeData carries the editable fields of an Employee
type EmployeeData struct {
	Name            string
	CPF             string
	RG              string
	BirthDate       *time.Time
	Address         Address
	HireDate        *time.Time
	TerminationDate *time.Time
	Role            string
	Salary          decimal.Decimal
}

// NewEmployee creates a new active employee
func NewEmployee(data EmployeeData) (*Employee, error) {
	e := &Employee{BaseEntity: shared.NewBaseEntity(), Active: true}
	if err := e.apply(data); err != nil {
		return nil, err
	}
	return e, nil
}

// Update replaces the employee's fields
func (e *Employee) Update(data EmployeeData, active bool) error {
	if err := e.apply(data); err != nil {
		return err
	}
	e.Active = active
	e.UpdatedAt = time.Now()
	return nil
}

// IsTerminated reports whether the employee has a termination date in the past
func (e *Employee) IsTerminated(now time.Time) bool {
	return e.TerminationDate != nil && !e.TerminationDate.After(now)
}

func (e *Employee) apply(data EmployeeData) error {
	if err := required("O nome é obrigatório", "Nome", data.Name, 100); err != nil {
		return err
	}
	if err := required("O cargo é obrigatório", "Cargo", data.Role, 50); err != nil {
		return err
	}
	cpf, err := optionalCPF(data.CPF)
	if err != nil {
		return err
	}
	rg := strings.TrimSpace(data.RG)
	if err := maxLength("RG", rg, 20); err != nil {
		return err
	}
	if data.Salary.IsNegative() {
		return shared.NewDomainError("INVALID_SALARY", "O salário não pode ser negativo")
	}
	if data.HireDate != nil && data.TerminationDate != nil && data.TerminationDate.Before(*data.HireDate) {
		return shared.NewDomainError("INVALID_TERMINATION_DATE", "A data de demissão não pode ser anterior à data de admissão")
	}
	if data.BirthDate != nil && data.BirthDate.After(time.Now()) {
		return shared.NewDomainError("INVALID_BIRTH_DATE", "A data de nascimento não pode estar no futuro")
	}
	address := data.Address
	address.Normalize()
	if err := address.Validate(); err != nil {
		return err
	}

	e.Name = normalizeName(data.Name)
	e.CPF = cpf
	e.RG = rg
	e.BirthDate = data.BirthDate
	e.Address = address
	e.HireDate = data.HireDate
	e.TerminationDate = data.TerminationDate
	e.Role = normalizeName(data.Role)
	e.Salary = data.Salary.Round(2)
	return nil
}

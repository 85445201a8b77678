package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sistemaempresa/backend/internal/domain/partner"
)

// AddressModel holds the contact and postal columns shared by every partner table.
type AddressModel struct {
	Email      string `gorm:"column:email;type:varchar(100)"`
	Phone      string `gorm:"column:telefone;type:varchar(20)"`
	Street     string `gorm:"column:endereco;type:varchar(200)"`
	Number     string `gorm:"column:numero;type:varchar(20)"`
	Complement string `gorm:"column:complemento;type:varchar(100)"`
	District   string `gorm:"column:bairro;type:varchar(50)"`
	PostalCode string `gorm:"column:cep;type:varchar(10)"`
}

func addressToDomain(a AddressModel, cityID *int64, city *CityModel) partner.Address {
	addr := partner.Address{
		Email:      a.Email,
		Phone:      a.Phone,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		PostalCode: a.PostalCode,
		CityID:     cityID,
	}
	if city != nil {
		addr.CityName = city.Name
	}
	return addr
}

func addressFromDomain(a partner.Address) AddressModel {
	return AddressModel{
		Email:      a.Email,
		Phone:      a.Phone,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		PostalCode: a.PostalCode,
	}
}

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	BaseModel
	Name    string       `gorm:"column:nome;type:varchar(100);not null"`
	CPF     string       `gorm:"column:cpf;type:varchar(14);index"`
	CNPJ    string       `gorm:"column:cnpj;type:varchar(18);index"`
	Address AddressModel `gorm:"embedded"`
	CityID  *int64       `gorm:"column:cidade_id;index"`
	City    *CityModel   `gorm:"foreignKey:CityID"`
	Active  bool         `gorm:"column:ativo;not null"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "cliente"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		CPF:        m.CPF,
		CNPJ:       m.CNPJ,
		Address:    addressToDomain(m.Address, m.CityID, m.City),
		Active:     m.Active,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *partner.Client) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.CPF = c.CPF
	m.CNPJ = c.CNPJ
	m.Address = addressFromDomain(c.Address)
	m.CityID = c.CityID
	m.Active = c.Active
}

// SupplierModel is the persistence model for the Supplier domain entity.
type SupplierModel struct {
	BaseModel
	CompanyName string       `gorm:"column:razao_social;type:varchar(150);not null"`
	TradeName   string       `gorm:"column:nome_fantasia;type:varchar(100)"`
	CNPJ        string       `gorm:"column:cnpj;type:varchar(18);index"`
	Address     AddressModel `gorm:"embedded"`
	CityID      *int64       `gorm:"column:cidade_id;index"`
	City        *CityModel   `gorm:"foreignKey:CityID"`
	Active      bool         `gorm:"column:ativo;not null"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "fornecedores"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		BaseEntity:  m.BaseModel.ToDomain(),
		CompanyName: m.CompanyName,
		TradeName:   m.TradeName,
		CNPJ:        m.CNPJ,
		Address:     addressToDomain(m.Address, m.CityID, m.City),
		Active:      m.Active,
	}
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.CompanyName = s.CompanyName
	m.TradeName = s.TradeName
	m.CNPJ = s.CNPJ
	m.Address = addressFromDomain(s.Address)
	m.CityID = s.CityID
	m.Active = s.Active
}

// EmployeeModel is the persistence model for the Employee domain entity.
type EmployeeModel struct {
	BaseModel
	Name            string          `gorm:"column:nome;type:varchar(100);not null"`
	CPF             string          `gorm:"column:cpf;type:varchar(14);index"`
	RG              string          `gorm:"column:rg;type:varchar(20)"`
	BirthDate       *time.Time      `gorm:"column:data_nascimento;type:date"`
	Address         AddressModel    `gorm:"embedded"`
	CityID          *int64          `gorm:"column:cidade_id;index"`
	City            *CityModel      `gorm:"foreignKey:CityID"`
	HireDate        *time.Time      `gorm:"column:data_admissao;type:date"`
	TerminationDate *time.Time      `gorm:"column:data_demissao;type:date"`
	Role            string          `gorm:"column:cargo;type:varchar(50);not null"`
	Salary          decimal.Decimal `gorm:"column:salario;type:numeric(12,2);not null;default:0"`
	Active          bool            `gorm:"column:ativo;not null"`
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "funcionario"
}

// ToDomain converts the persistence model to a domain Employee entity.
func (m *EmployeeModel) ToDomain() *partner.Employee {
	return &partner.Employee{
		BaseEntity:      m.BaseModel.ToDomain(),
		Name:            m.Name,
		CPF:             m.CPF,
		RG:              m.RG,
		BirthDate:       m.BirthDate,
		Address:         addressToDomain(m.Address, m.CityID, m.City),
		HireDate:        m.HireDate,
		TerminationDate: m.TerminationDate,
		Role:            m.Role,
		Salary:          m.Salary,
		Active:          m.Active,
	}
}

// FromDomain populates the persistence model from a domain Employee entity.
func (m *EmployeeModel) FromDomain(e *partner.Employee) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Name = e.Name
	m.CPF = e.CPF
	m.RG = e.RG
	m.BirthDate = e.BirthDate
	m.Address = addressFromDomain(e.Address)
	m.CityID = e.CityID
	m.HireDate = e.HireDate
	m.TerminationDate = e.TerminationDate
	m.Role = e.Role
	m.Salary = e.Salary
	m.Active = e.Active
}

// TransporterModel is the persistence model for the Transporter domain entity.
type TransporterModel struct {
	BaseModel
	CompanyName string       `gorm:"column:razao_social;type:varchar(150);not null"`
	TradeName   string       `gorm:"column:nome_fantasia;type:varchar(100)"`
	CNPJ        string       `gorm:"column:cnpj;type:varchar(18);index"`
	Address     AddressModel `gorm:"embedded"`
	CityID      *int64       `gorm:"column:cidade_id;index"`
	City        *CityModel   `gorm:"foreignKey:CityID"`
	Active      bool         `gorm:"column:ativo;not null"`
}

// TableName returns the table name for GORM
func (TransporterModel) TableName() string {
	return "transportadora"
}

// ToDomain converts the persistence model to a domain Transporter entity.
func (m *TransporterModel) ToDomain() *partner.Transporter {
	return &partner.Transporter{
		BaseEntity:  m.BaseModel.ToDomain(),
		CompanyName: m.CompanyName,
		TradeName:   m.TradeName,
		CNPJ:        m.CNPJ,
		Address:     addressToDomain(m.Address, m.CityID, m.City),
		Active:      m.Active,
	}
}

// FromDomain populates the persistence model from a domain Transporter entity.
func (m *TransporterModel) FromDomain(t *partner.Transporter) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.CompanyName = t.CompanyName
	m.TradeName = t.TradeName
	m.CNPJ = t.CNPJ
	m.Address = addressFromDomain(t.Address)
	m.CityID = t.CityID
	m.Active = t.Active
}

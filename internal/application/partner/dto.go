package partner

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sistemaempresa/backend/internal/domain/partner"
	"github.com/sistemaempresa/backend/internal/domain/shared"
)

// dateLayout is the wire format of employee dates
const dateLayout = "2006-01-02"

// =============================================================================
// Shared DTOs
// =============================================================================

// ListRequest holds the query parameters of partner list endpoints
type ListRequest struct {
	Search          string `form:"search" binding:"max=100"`
	IncludeInactive bool   `form:"incluirInativos"`
	OrderBy         string `form:"ordenarPor" binding:"max=50"`
	OrderDir        string `form:"direcao" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// Filter converts the request into a repository filter
func (r ListRequest) Filter() shared.Filter {
	filter := shared.DefaultFilter()
	filter.Search = r.Search
	filter.IncludeInactive = r.IncludeInactive
	if r.OrderBy != "" {
		filter.OrderBy = r.OrderBy
	}
	if r.OrderDir != "" {
		filter.OrderDir = r.OrderDir
	}
	return filter
}

// AddressRequest carries the contact and postal fields of every partner
type AddressRequest struct {
	Email      string `json:"email" binding:"omitempty,email,max=100"`
	Phone      string `json:"telefone" binding:"max=20"`
	Street     string `json:"endereco" binding:"max=200"`
	Number     string `json:"numero" binding:"max=20"`
	Complement string `json:"complemento" binding:"max=100"`
	District   string `json:"bairro" binding:"max=50"`
	PostalCode string `json:"cep" binding:"max=10"`
	CityID     *int64 `json:"cidadeId"`
}

func (a AddressRequest) toDomain() partner.Address {
	return partner.Address{
		Email:      a.Email,
		Phone:      a.Phone,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		PostalCode: a.PostalCode,
		CityID:     a.CityID,
	}
}

// AddressResponse represents the address part of partner responses
type AddressResponse struct {
	Email      string `json:"email"`
	Phone      string `json:"telefone"`
	Street     string `json:"endereco"`
	Number     string `json:"numero"`
	Complement string `json:"complemento"`
	District   string `json:"bairro"`
	PostalCode string `json:"cep"`
	CityID     *int64 `json:"cidadeId"`
	CityName   string `json:"cidadeNome,omitempty"`
}

func toAddressResponse(a partner.Address) AddressResponse {
	return AddressResponse{
		Email:      a.Email,
		Phone:      a.Phone,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		PostalCode: a.PostalCode,
		CityID:     a.CityID,
		CityName:   a.CityName,
	}
}

// activeOr returns *active, or fallback when the field was omitted
func activeOr(active *bool, fallback bool) bool {
	if active == nil {
		return fallback
	}
	return *active
}

// =============================================================================
// Client DTOs
// =============================================================================

// ClientRequest is the body of create and update requests for a client
type ClientRequest struct {
	Name string `json:"nome" binding:"required,max=100"`
	CPF  string `json:"cpf" binding:"max=14"`
	CNPJ string `json:"cnpj" binding:"max=18"`
	AddressRequest
	Active *bool `json:"ativo"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
	CPF  string `json:"cpf"`
	CNPJ string `json:"cnpj"`
	AddressResponse
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToClientResponse converts a domain Client to a response
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		ID:              c.ID,
		Name:            c.Name,
		CPF:             c.CPF,
		CNPJ:            c.CNPJ,
		AddressResponse: toAddressResponse(c.Address),
		Active:          c.Active,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// =============================================================================
// Supplier DTOs
// =============================================================================

// SupplierRequest is the body of create and update requests for a supplier
type SupplierRequest struct {
	CompanyName string `json:"razaoSocial" binding:"required,max=150"`
	TradeName   string `json:"nomeFantasia" binding:"max=100"`
	CNPJ        string `json:"cnpj" binding:"required,max=18"`
	AddressRequest
	Active *bool `json:"ativo"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"razaoSocial"`
	TradeName   string `json:"nomeFantasia"`
	CNPJ        string `json:"cnpj"`
	AddressResponse
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToSupplierResponse converts a domain Supplier to a response
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:              s.ID,
		CompanyName:     s.CompanyName,
		TradeName:       s.TradeName,
		CNPJ:            s.CNPJ,
		AddressResponse: toAddressResponse(s.Address),
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// =============================================================================
// Transporter DTOs
// =============================================================================

// TransporterRequest is the body of create and update requests for a transporter
type TransporterRequest struct {
	CompanyName string `json:"razaoSocial" binding:"required,max=150"`
	TradeName   string `json:"nomeFantasia" binding:"max=100"`
	CNPJ        string `json:"cnpj" binding:"max=18"`
	AddressRequest
	Active *bool `json:"ativo"`
}

// TransporterResponse represents a transporter in API responses
type TransporterResponse struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"razaoSocial"`
	TradeName   string `json:"nomeFantasia"`
	CNPJ        string `json:"cnpj"`
	AddressResponse
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToTransporterResponse converts a domain Transporter to a response
func ToTransporterResponse(t *partner.Transporter) TransporterResponse {
	return TransporterResponse{
		ID:              t.ID,
		CompanyName:     t.CompanyName,
		TradeName:       t.TradeName,
		CNPJ:            t.CNPJ,
		AddressResponse: toAddressResponse(t.Address),
		Active:          t.Active,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// =============================================================================
// Employee DTOs
// =============================================================================

// EmployeeRequest is the body of create and update requests for an employee.
// Dates use the YYYY-MM-DD format.
type EmployeeRequest struct {
	Name      string `json:"nome" binding:"required,max=100"`
	CPF       string `json:"cpf" binding:"max=14"`
	RG        string `json:"rg" binding:"max=20"`
	BirthDate string `json:"dataNascimento" binding:"omitempty,datetime=2006-01-02"`
	AddressRequest
	HireDate        string          `json:"dataAdmissao" binding:"omitempty,datetime=2006-01-02"`
	TerminationDate string          `json:"dataDemissao" binding:"omitempty,datetime=2006-01-02"`
	Role            string          `json:"cargo" binding:"required,max=50"`
	Salary          decimal.Decimal `json:"salario"`
	Active          *bool           `json:"ativo"`
}

// toData converts the request into domain input, parsing its dates
func (r EmployeeRequest) toData() (partner.EmployeeData, error) {
	birth, err := parseDate("dataNascimento", r.BirthDate)
	if err != nil {
		return partner.EmployeeData{}, err
	}
	hire, err := parseDate("dataAdmissao", r.HireDate)
	if err != nil {
		return partner.EmployeeData{}, err
	}
	termination, err := parseDate("dataDemissao", r.TerminationDate)
	if err != nil {
		return partner.EmployeeData{}, err
	}
	return partner.EmployeeData{
		Name:            r.Name,
		CPF:             r.CPF,
		RG:              r.RG,
		BirthDate:       birth,
		Address:         r.AddressRequest.toDomain(),
		HireDate:        hire,
		TerminationDate: termination,
		Role:            r.Role,
		Salary:          r.Salary,
	}, nil
}

func parseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, shared.NewValidationError(field + " deve estar no formato AAAA-MM-DD")
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"nome"`
	CPF       string `json:"cpf"`
	RG        string `json:"rg"`
	BirthDate string `json:"dataNascimento,omitempty"`
	AddressResponse
	HireDate        string          `json:"dataAdmissao,omitempty"`
	TerminationDate string          `json:"dataDemissao,omitempty"`
	Role            string          `json:"cargo"`
	Salary          decimal.Decimal `json:"salario"`
	Active          bool            `json:"ativo"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ToEmployeeResponse converts a domain Employee to a response
func ToEmployeeResponse(e *partner.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		Name:            e.Name,
		CPF:             e.CPF,
		RG:              e.RG,
		BirthDate:       formatDate(e.BirthDate),
		AddressResponse: toAddressResponse(e.Address),
		HireDate:        formatDate(e.HireDate),
		TerminationDate: formatDate(e.TerminationDate),
		Role:            e.Role,
		Salary:          e.Salary,
		Active:          e.Active,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// toResponses converts a slice of domain records with the given converter
func toResponses[T any, R any](records []T, convert func(*T) R) []R {
	responses := make([]R, len(records))
	for i := range records {
		responses[i] = convert(&records[i])
	}
	return responses
}

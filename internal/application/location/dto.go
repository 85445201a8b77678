package location

import (
	"github.com/sistemaempresa/backend/internal/domain/location"
)

// =============================================================================
// Country DTOs
// =============================================================================

// CountryRequest is the body of create and update requests for a country
type CountryRequest struct {
	Name         string `json:"nome" binding:"required,max=100"`
	Abbreviation string `json:"sigla" binding:"max=5"`
	DialingCode  string `json:"codigo" binding:"max=10"`
}

// CountryResponse represents a country in API responses
type CountryResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"nome"`
	Abbreviation string `json:"sigla"`
	DialingCode  string `json:"codigo"`
}

// ToCountryResponse converts a domain Country to a response
func ToCountryResponse(c *location.Country) CountryResponse {
	return CountryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Abbreviation: c.Abbreviation,
		DialingCode:  c.DialingCode,
	}
}

// =============================================================================
// State DTOs
// =============================================================================

// StateRequest is the body of create and update requests for a state
type StateRequest struct {
	Name      string `json:"nome" binding:"required,max=100"`
	UF        string `json:"uf" binding:"required,max=5"`
	CountryID int64  `json:"paisId" binding:"required,gt=0"`
}

// StateResponse represents a state in API responses
type StateResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"nome"`
	UF          string `json:"uf"`
	CountryID   *int64 `json:"paisId"`
	CountryName string `json:"paisNome,omitempty"`
}

// ToStateResponse converts a domain State to a response
func ToStateResponse(s *location.State) StateResponse {
	return StateResponse{
		ID:          s.ID,
		Name:        s.Name,
		UF:          s.UF,
		CountryID:   s.CountryID,
		CountryName: s.CountryName,
	}
}

// =============================================================================
// City DTOs
// =============================================================================

// CityRequest is the body of create and update requests for a city
type CityRequest struct {
	Name     string `json:"nome" binding:"required,max=100"`
	IBGECode string `json:"codigoIbge" binding:"max=10"`
	StateID  int64  `json:"estadoId"`
}

// CityResponse represents a city in API responses
type CityResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"nome"`
	IBGECode    string `json:"codigoIbge"`
	StateID     *int64 `json:"estadoId"`
	StateName   string `json:"estadoNome,omitempty"`
	StateUF     string `json:"estadoUf,omitempty"`
	CountryID   *int64 `json:"paisId,omitempty"`
	CountryName string `json:"paisNome,omitempty"`
}

// ToCityResponse converts a domain City to a response
func ToCityResponse(c *location.City) CityResponse {
	return CityResponse{
		ID:          c.ID,
		Name:        c.Name,
		IBGECode:    c.IBGECode,
		StateID:     c.StateID,
		StateName:   c.StateName,
		StateUF:     c.StateUF,
		CountryID:   c.CountryID,
		CountryName: c.CountryName,
	}
}

// CityDependentsResponse lists how many records of each kind reference a city
type CityDependentsResponse struct {
	CityID int64 `json:"cidadeId"`
	location.Dependents
	Total int64 `json:"total"`
}

// =============================================================================
// Conversions
// =============================================================================

func toCountryResponses(countries []location.Country) []CountryResponse {
	responses := make([]CountryResponse, len(countries))
	for i := range countries {
		responses[i] = ToCountryResponse(&countries[i])
	}
	return responses
}

func toStateResponses(states []location.State) []StateResponse {
	responses := make([]StateResponse, len(states))
	for i := range states {
		responses[i] = ToStateResponse(&states[i])
	}
	return responses
}

func toCityResponses(cities []location.City) []CityResponse {
	responses := make([]CityResponse, len(cities))
	for i := range cities {
		responses[i] = ToCityResponse(&cities[i])
	}
	return responses
}

package location

import (
	"fmt"
	"time"

	"github.com/sistemaempresa/backend/internal/domain/shared"
)

// Field limits for State
const (
	StateNameMaxLength = 100
	StateUFMaxLength   = 5
)

// State is a first-level subdivision of a Country (table estado)
type State struct {
	shared.BaseEntity
	Name string
	UF   string
	// CountryID is required on save but may be nil after the country was force-deleted
	CountryID *int64

	// Joined fields, populated on reads only
	CountryName string
}

// NewState creates a new state referencing countryID
func NewState(name, uf string, countryID int64) (*State, error) {
	s := &State{BaseEntity: shared.NewBaseEntity()}
	if err := s.apply(name, uf, countryID); err != nil {
		return nil, err
	}
	return s, nil
}

// Update replaces the state's fields
func (s *State) Update(name, uf string, countryID int64) error {
	if err := s.apply(name, uf, countryID); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

// HasCountry reports whether the state still references a country
func (s *State) HasCountry() bool {
	return s.CountryID != nil
}

func (s *State) apply(name, uf string, countryID int64) error {
	name = NormalizeText(name)
	uf = NormalizeCode(uf)

	if err := validateRequired("INVALID_NAME", "Nome do estado", name, StateNameMaxLength); err != nil {
		return err
	}
	if err := validateRequired("INVALID_UF", "UF", uf, StateUFMaxLength); err != nil {
		return err
	}
	if countryID <= 0 {
		return shared.NewDomainError("INVALID_COUNTRY", "País é obrigatório")
	}

	s.Name = name
	s.UF = uf
	s.CountryID = &countryID
	return nil
}

// ErrCountryNotFound is returned when a state references a country that does not exist
func ErrCountryNotFound(countryID int64) *shared.DomainError {
	return shared.NewValidationError(fmt.Sprintf("País com ID %d não encontrado", countryID))
}

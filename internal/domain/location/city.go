package location

import (
	"fmt"
	"time"

	"github.com/sistemaempresa/backend/internal/domain/shared"
)

// Field limits for City
const (
	CityNameMaxLength     = 100
	CityIBGECodeMaxLength = 10
)

// City belongs to a State and is referenced by clients, suppliers,
// employees and transporters (table cidade)
type City struct {
	shared.BaseEntity
	Name     string
	IBGECode string // municipal code, optional
	// StateID is required on save but may be nil after the state was force-deleted
	StateID *int64

	// Joined fields, populated on reads only
	StateName   string
	StateUF     string
	CountryID   *int64
	CountryName string
}

// NewCity creates a new city referencing stateID
func NewCity(name, ibgeCode string, stateID int64) (*City, error) {
	c := &City{BaseEntity: shared.NewBaseEntity()}
	if err := c.apply(name, ibgeCode, stateID); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the city's fields
func (c *City) Update(name, ibgeCode string, stateID int64) error {
	if err := c.apply(name, ibgeCode, stateID); err != nil {
		return err
	}
	c.UpdatedAt = time.Now()
	return nil
}

func (c *City) apply(name, ibgeCode string, stateID int64) error {
	name = NormalizeText(name)
	ibgeCode = NormalizeText(ibgeCode)

	if err := validateRequired("INVALID_NAME", "Nome da cidade", name, CityNameMaxLength); err != nil {
		return err
	}
	if err := validateMaxLength("INVALID_IBGE_CODE", "Código IBGE", ibgeCode, CityIBGECodeMaxLength); err != nil {
		return err
	}
	if stateID <= 0 {
		return shared.NewDomainError("INVALID_STATE", "Estado é obrigatório")
	}

	c.Name = name
	c.IBGECode = ibgeCode
	c.StateID = &stateID
	return nil
}

// ErrStateNotFound is returned when a city references a state that does not exist
func ErrStateNotFound(stateID int64) *shared.DomainError {
	return shared.NewValidationError(fmt.Sprintf("Estado com ID %d não existe no banco de dados.", stateID)).
		WithHint("Verifique se o ID do estado está correto ou cadastre o estado primeiro.")
}

// ErrCityHasDependents is returned when a plain delete finds linked records
var ErrCityHasDependents = shared.NewConflictError("Não é possível excluir esta cidade pois existem registros vinculados a ela.")

// ErrCountryHasDependents is returned when a plain delete finds states linked to the country
var ErrCountryHasDependents = shared.NewConflictError("Não é possível excluir este país pois existem estados vinculados a ele.")

// ErrStateHasDependents is returned when a plain delete finds cities linked to the state
var ErrStateHasDependents = shared.NewConflictError("Não é possível excluir este estado pois existem cidades vinculadas a ele.")

// Package location holds the Country → State → City hierarchy and the
// rules that keep references between its levels valid.
package location

import (
	"time"

	"github.com/sistemaempresa/backend/internal/domain/shared"
)

// Field limits for Country
const (
	CountryNameMaxLength         = 100
	CountryAbbreviationMaxLength = 5
	CountryDialingCodeMaxLength  = 10
)

// Country is the root of the location hierarchy (table pais)
type Country struct {
	shared.BaseEntity
	Name         string
	Abbreviation string // sigla, e.g. "BRA"
	DialingCode  string // codigo, e.g. "55"
}

// NewCountry creates a new country after validating and normalizing its fields
func NewCountry(name, abbreviation, dialingCode string) (*Country, error) {
	c := &Country{BaseEntity: shared.NewBaseEntity()}
	if err := c.apply(name, abbreviation, dialingCode); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the country's fields
func (c *Country) Update(name, abbreviation, dialingCode string) error {
	if err := c.apply(name, abbreviation, dialingCode); err != nil {
		return err
	}
	c.UpdatedAt = time.Now()
	return nil
}

func (c *Country) apply(name, abbreviation, dialingCode string) error {
	name = NormalizeText(name)
	abbreviation = NormalizeCode(abbreviation)
	dialingCode = NormalizeDialingCode(dialingCode)

	if err := validateRequired("INVALID_NAME", "Nome do país", name, CountryNameMaxLength); err != nil {
		return err
	}
	if err := validateMaxLength("INVALID_ABBREVIATION", "Sigla", abbreviation, CountryAbbreviationMaxLength); err != nil {
		return err
	}
	if err := validateMaxLength("INVALID_DIALING_CODE", "Código", dialingCode, CountryDialingCodeMaxLength); err != nil {
		return err
	}

	c.Name = name
	c.Abbreviation = abbreviation
	c.DialingCode = dialingCode
	return nil
}

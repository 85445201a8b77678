package partner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sistemaempresa/backend/internal/domain/shared"
	"golang.org/x/text/unicode/norm"
)

// Address holds the contact and postal fields shared by every partner type
type Address struct {
	Email      string
	Phone      string // telefone
	Street     string // endereco
	Number     string
	Complement string
	District   string // bairro
	PostalCode string // cep, stored as digits
	CityID     *int64
	CityName   string // joined, read only
}

// Normalize trims every field and reduces the postal code to digits
func (a *Address) Normalize() {
	a.Email = strings.TrimSpace(a.Email)
	a.Phone = strings.TrimSpace(a.Phone)
	a.Street = strings.TrimSpace(a.Street)
	a.Number = strings.TrimSpace(a.Number)
	a.Complement = strings.TrimSpace(a.Complement)
	a.District = strings.TrimSpace(a.District)
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	if a.CityID != nil && *a.CityID <= 0 {
		a.CityID = nil
	}
}

// Validate checks lengths, e-mail and CEP. It does not check that the city exists.
func (a *Address) Validate() error {
	if a.Email != "" && !ValidEmail(a.Email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email inválido")
	}
	if a.PostalCode != "" {
		if !ValidCEP(a.PostalCode) {
			return shared.NewDomainError("INVALID_CEP", "CEP inválido")
		}
		a.PostalCode = OnlyDigits(a.PostalCode)
	}
	limits := []struct {
		field string
		value string
		max   int
	}{
		{"Email", a.Email, 100},
		{"Telefone", a.Phone, 20},
		{"Endereço", a.Street, 200},
		{"Número", a.Number, 20},
		{"Complemento", a.Complement, 100},
		{"Bairro", a.District, 50},
	}
	for _, l := range limits {
		if err := maxLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}
	return nil
}

func required(message, field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return shared.NewValidationError(message)
	}
	return maxLength(field, value, max)
}

func maxLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return shared.NewValidationError(fmt.Sprintf("%s não pode exceder %d caracteres", field, max))
	}
	return nil
}

func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

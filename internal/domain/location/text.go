package location

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sistemaempresa/backend/internal/domain/shared"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText trims surrounding whitespace and converts s to Unicode NFC,
// so "São Paulo" typed with a combining tilde compares equal to the precomposed form.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeCode normalizes s and upper-cases it (UF, sigla).
func NormalizeCode(s string) string {
	// Casers keep state between calls, so each call gets its own
	return cases.Upper(language.BrazilianPortuguese).String(NormalizeText(s))
}

// NormalizeDialingCode strips the leading "+" operators often type in front of the code.
func NormalizeDialingCode(s string) string {
	return strings.TrimLeft(NormalizeText(s), "+")
}

func validateRequired(code, field, value string, max int) error {
	if value == "" {
		return shared.NewDomainError(code, field+" é obrigatório")
	}
	return validateMaxLength(code, field, value, max)
}

func validateMaxLength(code, field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return shared.NewDomainError(code, fmt.Sprintf("%s não pode exceder %d caracteres", field, max))
	}
	return nil
}

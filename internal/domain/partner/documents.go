package partner

import (
	"net/mail"
	"strings"
	"unicode"
)

// OnlyDigits strips punctuation from a formatted document ("123.456.789-09" → "12345678909")
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF reports whether cpf, with or without punctuation, is a valid
// Brazilian individual taxpayer number.
func ValidCPF(cpf string) bool {
	d := OnlyDigits(cpf)
	if len(d) != 11 || allSameDigit(d) {
		return false
	}
	return checkDigit(d[:9], 10) == int(d[9]-'0') &&
		checkDigit(d[:10], 11) == int(d[10]-'0')
}

// ValidCNPJ reports whether cnpj, with or without punctuation, is a valid
// Brazilian company registration number.
func ValidCNPJ(cnpj string) bool {
	d := OnlyDigits(cnpj)
	if len(d) != 14 || allSameDigit(d) {
		return false
	}
	first := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	second := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	return weightedDigit(d[:12], first) == int(d[12]-'0') &&
		weightedDigit(d[:13], second) == int(d[13]-'0')
}

// ValidCEP reports whether cep holds exactly eight digits once punctuation is removed
func ValidCEP(cep string) bool {
	for _, r := range cep {
		if !unicode.IsDigit(r) && r != '-' && r != '.' && r != ' ' {
			return false
		}
	}
	return len(OnlyDigits(cep)) == 8
}

// ValidEmail reports whether email is a bare address (no display name)
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@"):], ".")
}

// CPF check digit: weights run from start down to 2
func checkDigit(digits string, start int) int {
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * (start - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func weightedDigit(digits string, weights []int) int {
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * weights[i]
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func allSameDigit(d string) bool {
	return strings.Count(d, d[:1]) == len(d)
}

package persistence

import (
	"testing"

	"github.com/sistemaempresa/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns ASC", "", "ASC"},
		{"ASC uppercase returns ASC", "ASC", "ASC"},
		{"desc lowercase returns DESC", "desc", "DESC"},
		{"DESC uppercase returns DESC", "DESC", "DESC"},
		{"invalid value returns ASC", "INVALID", "ASC"},
		{"sql injection attempt returns ASC", "DESC; DROP TABLE cidade;--", "ASC"},
		{"whitespace around desc returns DESC", "  desc  ", "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortOrder(tt.input))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		defaultField string
		expected     string
	}{
		{"empty string returns default", "", "nome", "nome"},
		{"valid field returns field", "cpf", "nome", "cpf"},
		{"invalid field returns default", "senha", "nome", "nome"},
		{"sql injection attempt returns default", "nome; DROP TABLE cliente;--", "nome", "nome"},
		{"case sensitive", "NOME", "nome", "nome"},
		{"whitespace around valid field returns field", "  email  ", "nome", "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortField(tt.input, ClientSortFields, tt.defaultField))
		})
	}
}

func TestOrderClause(t *testing.T) {
	t.Run("falls back to the default column of the table", func(t *testing.T) {
		clause := orderClause("fornecedores", shared.DefaultFilter(), CompanySortFields, "razao_social")
		assert.Equal(t, "fornecedores.razao_social ASC", clause)
	})

	t.Run("uses whitelisted column and direction", func(t *testing.T) {
		filter := shared.Filter{OrderBy: "salario", OrderDir: "desc"}
		clause := orderClause("funcionario", filter, EmployeeSortFields, "nome")
		assert.Equal(t, "funcionario.salario DESC", clause)
	})
}

func TestSortFieldsWhitelists(t *testing.T) {
	for name, fields := range map[string]map[string]bool{
		"client":   ClientSortFields,
		"company":  CompanySortFields,
		"employee": EmployeeSortFields,
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, fields["id"])
			assert.True(t, fields["created_at"])
			assert.False(t, fields["ativo; --"])
		})
	}
}

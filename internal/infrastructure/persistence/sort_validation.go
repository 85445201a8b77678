package persistence

import (
	"strings"

	"github.com/sistemaempresa/backend/internal/domain/shared"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "ASC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "DESC" {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// orderClause builds a safe ORDER BY clause for table from the filter
func orderClause(table string, filter shared.Filter, allowedFields map[string]bool, defaultField string) string {
	field := ValidateSortField(filter.OrderBy, allowedFields, defaultField)
	return table + "." + field + " " + ValidateSortOrder(filter.OrderDir)
}

// ClientSortFields contains allowed sort fields for clients
var ClientSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"nome":       true,
	"cpf":        true,
	"cnpj":       true,
	"email":      true,
}

// CompanySortFields contains allowed sort fields for suppliers and transporters
var CompanySortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"razao_social":  true,
	"nome_fantasia": true,
	"cnpj":          true,
	"email":         true,
}

// EmployeeSortFields contains allowed sort fields for employees
var EmployeeSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"nome":          true,
	"cpf":           true,
	"cargo":         true,
	"data_admissao": true,
	"salario":       true,
}

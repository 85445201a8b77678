package shared

// Filter represents query filter options for list operations
type Filter struct {
	Search          string
	IncludeInactive bool
	OrderBy         string
	OrderDir        string
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		OrderBy:  "nome",
		OrderDir: "asc",
	}
}

package location

// Dependents counts the rows of each table that reference a City
type Dependents struct {
	Clients      int64 `json:"clientes"`
	Suppliers    int64 `json:"fornecedores"`
	Employees    int64 `json:"funcionarios"`
	Transporters int64 `json:"transportadoras"`
}

// Total returns the number of dependent rows across all tables
func (d Dependents) Total() int64 {
	return d.Clients + d.Suppliers + d.Employees + d.Transporters
}

// Any reports whether at least one row references the city
func (d Dependents) Any() bool {
	return d.Total() > 0
}

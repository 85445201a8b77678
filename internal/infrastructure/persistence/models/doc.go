// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
//   - base.go: BaseModel (int64 id + timestamps)
//   - location.go: pais, estado and cidade
//   - partner.go: cliente, fornecedores, funcionario and transportadora
//
// Association fields (Country, State, City) are read-only: repositories preload
// them for the joined names and omit them on writes.
package models

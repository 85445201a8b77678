package models

import (
	"github.com/sistemaempresa/backend/internal/domain/location"
)

// CountryModel is the persistence model for the Country domain entity.
type CountryModel struct {
	BaseModel
	Name         string `gorm:"column:nome;type:varchar(100);not null"`
	Abbreviation string `gorm:"column:sigla;type:varchar(5)"`
	DialingCode  string `gorm:"column:codigo;type:varchar(10)"`
}

// TableName returns the table name for GORM
func (CountryModel) TableName() string {
	return "pais"
}

// ToDomain converts the persistence model to a domain Country entity.
func (m *CountryModel) ToDomain() *location.Country {
	return &location.Country{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Abbreviation: m.Abbreviation,
		DialingCode:  m.DialingCode,
	}
}

// FromDomain populates the persistence model from a domain Country entity.
func (m *CountryModel) FromDomain(c *location.Country) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Abbreviation = c.Abbreviation
	m.DialingCode = c.DialingCode
}

// CountryModelFromDomain creates a new persistence model from a domain Country entity.
func CountryModelFromDomain(c *location.Country) *CountryModel {
	m := &CountryModel{}
	m.FromDomain(c)
	return m
}

// StateModel is the persistence model for the State domain entity.
type StateModel struct {
	BaseModel
	Name      string        `gorm:"column:nome;type:varchar(100);not null"`
	UF        string        `gorm:"column:uf;type:varchar(5);not null"`
	CountryID *int64        `gorm:"column:pais_id;index"`
	Country   *CountryModel `gorm:"foreignKey:CountryID"`
}

// TableName returns the table name for GORM
func (StateModel) TableName() string {
	return "estado"
}

// ToDomain converts the persistence model to a domain State entity.
// The country name is filled in when the Country association was preloaded.
func (m *StateModel) ToDomain() *location.State {
	s := &location.State{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		UF:         m.UF,
		CountryID:  m.CountryID,
	}
	if m.Country != nil {
		s.CountryName = m.Country.Name
	}
	return s
}

// FromDomain populates the persistence model from a domain State entity.
func (m *StateModel) FromDomain(s *location.State) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Name = s.Name
	m.UF = s.UF
	m.CountryID = s.CountryID
}

// StateModelFromDomain creates a new persistence model from a domain State entity.
func StateModelFromDomain(s *location.State) *StateModel {
	m := &StateModel{}
	m.FromDomain(s)
	return m
}

// CityModel is the persistence model for the City domain entity.
type CityModel struct {
	BaseModel
	Name     string      `gorm:"column:nome;type:varchar(100);not null"`
	IBGECode string      `gorm:"column:codigo_ibge;type:varchar(10)"`
	StateID  *int64      `gorm:"column:estado_id;index"`
	State    *StateModel `gorm:"foreignKey:StateID"`
}

// TableName returns the table name for GORM
func (CityModel) TableName() string {
	return "cidade"
}

// ToDomain converts the persistence model to a domain City entity.
// State and country fields are filled in from the preloaded State.Country chain.
func (m *CityModel) ToDomain() *location.City {
	c := &location.City{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		IBGECode:   m.IBGECode,
		StateID:    m.StateID,
	}
	if m.State != nil {
		c.StateName = m.State.Name
		c.StateUF = m.State.UF
		c.CountryID = m.State.CountryID
		if m.State.Country != nil {
			c.CountryName = m.State.Country.Name
		}
	}
	return c
}

// FromDomain populates the persistence model from a domain City entity.
func (m *CityModel) FromDomain(c *location.City) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.IBGECode = c.IBGECode
	m.StateID = c.StateID
}

// CityModelFromDomain creates a new persistence model from a domain City entity.
func CityModelFromDomain(c *location.City) *CityModel {
	m := &CityModel{}
	m.FromDomain(c)
	return m
}

package location

import (
	"context"
)

// CountryRepository defines the interface for country persistence
type CountryRepository interface {
	// FindByID finds a country by its ID
	FindByID(ctx context.Context, id int64) (*Country, error)

	// FindAll returns every country ordered by name
	FindAll(ctx context.Context) ([]Country, error)

	// Save creates the country when it is new, otherwise updates it
	Save(ctx context.Context, country *Country) error

	// Delete removes a country; fails with ErrNotFound when absent
	Delete(ctx context.Context, id int64) error

	// ExistsByID checks if a country exists
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// CountStates counts the states referencing the country
	CountStates(ctx context.Context, id int64) (int64, error)

	// ForceDelete nulls the country reference of its states and deletes the
	// country in one transaction. Returns the number of states detached.
	ForceDelete(ctx context.Context, id int64) (int64, error)
}

// StateRepository defines the interface for state persistence
type StateRepository interface {
	// FindByID finds a state by its ID, joined with its country
	FindByID(ctx context.Context, id int64) (*State, error)

	// FindAll returns states ordered by name, optionally restricted to one country
	FindAll(ctx context.Context, countryID *int64) ([]State, error)

	// Save creates the state when it is new, otherwise updates it
	Save(ctx context.Context, state *State) error

	// Delete removes a state; fails with ErrNotFound when absent
	Delete(ctx context.Context, id int64) error

	// ExistsByID checks if a state exists
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// CountCities counts the cities referencing the state
	CountCities(ctx context.Context, id int64) (int64, error)

	// ForceDelete nulls the state reference of its cities and deletes the
	// state in one transaction. Returns the number of cities detached.
	ForceDelete(ctx context.Context, id int64) (int64, error)
}

// CityRepository defines the interface for city persistence
type CityRepository interface {
	// FindByID finds a city by its ID, joined with its state and country
	FindByID(ctx context.Context, id int64) (*City, error)

	// FindAll returns cities ordered by name, optionally restricted to one state
	FindAll(ctx context.Context, stateID *int64) ([]City, error)

	// Save creates the city when it is new, otherwise updates it
	Save(ctx context.Context, city *City) error

	// Delete removes a city; fails with ErrNotFound when absent
	Delete(ctx context.Context, id int64) error

	// ExistsByID checks if a city exists
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// CountDependents counts clients, suppliers, employees and transporters
	// referencing the city
	CountDependents(ctx context.Context, id int64) (Dependents, error)

	// ForceDelete nulls the city reference on every dependent table and deletes
	// the city in one transaction
	ForceDelete(ctx context.Context, id int64) (Dependents, error)
}

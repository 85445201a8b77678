package location

import (
	"context"

	"github.com/sistemaempresa/backend/internal/domain/location"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockCountryRepository is a mock implementation of CountryRepository
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) FindByID(ctx context.Context, id int64) (*location.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Country), args.Error(1)
}

func (m *MockCountryRepository) FindAll(ctx context.Context) ([]location.Country, error) {
	args := m.Called(ctx)
	return args.Get(0).([]location.Country), args.Error(1)
}

func (m *MockCountryRepository) Save(ctx context.Context, country *location.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockCountryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCountryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCountryRepository) CountStates(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCountryRepository) ForceDelete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockStateRepository is a mock implementation of StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) FindByID(ctx context.Context, id int64) (*location.State, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.State), args.Error(1)
}

func (m *MockStateRepository) FindAll(ctx context.Context, countryID *int64) ([]location.State, error) {
	args := m.Called(ctx, countryID)
	return args.Get(0).([]location.State), args.Error(1)
}

func (m *MockStateRepository) Save(ctx context.Context, state *location.State) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockStateRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStateRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStateRepository) CountCities(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStateRepository) ForceDelete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockCityRepository is a mock implementation of CityRepository
type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) FindByID(ctx context.Context, id int64) (*location.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.City), args.Error(1)
}

func (m *MockCityRepository) FindAll(ctx context.Context, stateID *int64) ([]location.City, error) {
	args := m.Called(ctx, stateID)
	return args.Get(0).([]location.City), args.Error(1)
}

func (m *MockCityRepository) Save(ctx context.Context, city *location.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCityRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCityRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCityRepository) CountDependents(ctx context.Context, id int64) (location.Dependents, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(location.Dependents), args.Error(1)
}

func (m *MockCityRepository) ForceDelete(ctx context.Context, id int64) (location.Dependents, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(location.Dependents), args.Error(1)
}

var (
	_ location.CountryRepository = (*MockCountryRepository)(nil)
	_ location.StateRepository   = (*MockStateRepository)(nil)
	_ location.CityRepository    = (*MockCityRepository)(nil)
)

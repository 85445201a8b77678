package partner

import (
	"context"

	"github.com/sistemaempresa/backend/internal/domain/partner"
	"github.com/sistemaempresa/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the partner Repository contract
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) FindAll(ctx context.Context, filter shared.Filter) ([]T, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) Save(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[T]) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository[T]) ExistsByDocument(ctx context.Context, document string, excludeID int64) (bool, error) {
	args := m.Called(ctx, document, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockCityLookup is a mock implementation of CityLookup
type MockCityLookup struct {
	mock.Mock
}

func (m *MockCityLookup) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var (
	_ partner.ClientRepository      = (*MockRepository[partner.Client])(nil)
	_ partner.SupplierRepository    = (*MockRepository[partner.Supplier])(nil)
	_ partner.EmployeeRepository    = (*MockRepository[partner.Employee])(nil)
	_ partner.TransporterRepository = (*MockRepository[partner.Transporter])(nil)
)

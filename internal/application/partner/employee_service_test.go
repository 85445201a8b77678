package partner

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sistemaempresa/backend/internal/domain/partner"
	"github.com/sistemaempresa/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("termination before hire is rejected", func(t *testing.T) {
		repo := new(MockRepository[partner.Employee])

		_, err := NewEmployeeService(repo, new(MockCityLookup)).Create(ctx, EmployeeRequest{
			Name:            "Carlos",
			Role:            "Motorista",
			HireDate:        "2023-05-01",
			TerminationDate: "2023-04-30",
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TERMINATION_DATE", domainErr.Code)
	})

	t.Run("negative salary is rejected", func(t *testing.T) {
		repo := new(MockRepository[partner.Employee])

		_, err := NewEmployeeService(repo, new(MockCityLookup)).Create(ctx, EmployeeRequest{
			Name:   "Carlos",
			Role:   "Motorista",
			Salary: decimal.NewFromInt(-1),
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_SALARY", domainErr.Code)
	})

	t.Run("malformed date is a validation error", func(t *testing.T) {
		repo := new(MockRepository[partner.Employee])

		_, err := NewEmployeeService(repo, new(MockCityLookup)).Create(ctx, EmployeeRequest{
			Name:      "Carlos",
			Role:      "Motorista",
			BirthDate: "01/02/1990",
		})
		assert.ErrorIs(t, err, shared.NewValidationError(""))
	})

	t.Run("saves with parsed dates and rounded salary", func(t *testing.T) {
		repo := new(MockRepository[partner.Employee])
		repo.On("ExistsByDocument", ctx, "12345678909", int64(0)).Return(false, nil)

		var saved *partner.Employee
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Employee")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*partner.Employee)
				saved.ID = 2
			}).
			Return(nil)
		repo.On("FindByID", ctx, int64(2)).Return(&partner.Employee{
			BaseEntity: shared.BaseEntity{ID: 2},
			Name:       "Carlos",
			Role:       "Motorista",
			Salary:     decimal.RequireFromString("3150.46"),
			Active:     true,
		}, nil)

		resp, err := NewEmployeeService(repo, new(MockCityLookup)).Create(ctx, EmployeeRequest{
			Name:     "Carlos",
			CPF:      "123.456.789-09",
			Role:     "Motorista",
			HireDate: "2020-03-02",
			Salary:   decimal.RequireFromString("3150.456"),
		})
		require.NoError(t, err)
		require.NotNil(t, saved.HireDate)
		assert.Equal(t, "2020-03-02", saved.HireDate.Format(dateLayout))
		assert.True(t, decimal.RequireFromString("3150.46").Equal(saved.Salary))
		assert.Equal(t, int64(2), resp.ID)
		assert.Empty(t, resp.TerminationDate)
	})
}

func TestToEmployeeResponse_FormatsDates(t *testing.T) {
	hire, err := parseDate("dataAdmissao", "2021-01-15")
	require.NoError(t, err)

	resp := ToEmployeeResponse(&partner.Employee{Name: "Carlos", HireDate: hire})
	assert.Equal(t, "2021-01-15", resp.HireDate)
	assert.Empty(t, resp.BirthDate)
}

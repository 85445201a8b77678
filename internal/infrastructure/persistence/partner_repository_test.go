package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sistemaempresa/backend/internal/domain/partner"
	"github.com/sistemaempresa/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormClientRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("saves a client with its address and reads the city name", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormClientRepository(db.DB)
		country := seedCountry(t, db.DB, "Brasil")
		state := seedState(t, db.DB, "São Paulo", "SP", country.ID)
		city := seedCity(t, db.DB, "Campinas", state.ID)

		client, err := partner.NewClient("Ana Souza", "529.982.247-25", "", partner.Address{
			Email:      "ana@example.com",
			PostalCode: "13010-000",
			CityID:     &city.ID,
		})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, client))
		require.NotZero(t, client.ID)

		found, err := repo.FindByID(ctx, client.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana Souza", found.Name)
		assert.Equal(t, "52998224725", found.CPF)
		assert.Equal(t, "13010000", found.PostalCode)
		assert.Equal(t, "Campinas", found.CityName)
		assert.True(t, found.Active)
	})

	t.Run("a client saved inactive stays inactive", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormClientRepository(db.DB)

		client, err := partner.NewClient("Ana", "", "", partner.Address{})
		require.NoError(t, err)
		client.Active = false
		require.NoError(t, repo.Save(ctx, client))

		found, err := repo.FindByID(ctx, client.ID)
		require.NoError(t, err)
		assert.False(t, found.Active)

		active, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("lists active clients ordered by name and searches", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormClientRepository(db.DB)
		country := seedCountry(t, db.DB, "Brasil")
		state := seedState(t, db.DB, "São Paulo", "SP", country.ID)
		city := seedCity(t, db.DB, "Campinas", state.ID)
		seedClient(t, db.DB, "Carla", city.ID)
		bruno := seedClient(t, db.DB, "Bruno", city.ID)
		seedClient(t, db.DB, "Ana", city.ID)

		require.NoError(t, repo.Deactivate(ctx, bruno.ID))

		active, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, active, 2)
		assert.Equal(t, "Ana", active[0].Name)
		assert.Equal(t, "Carla", active[1].Name)

		filter := shared.DefaultFilter()
		filter.IncludeInactive = true
		all, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		filter.Search = "BRU"
		found, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.False(t, found[0].Active)
	})

	t.Run("detects duplicate documents", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormClientRepository(db.DB)

		client, err := partner.NewClient("Empresa X", "", "11.222.333/0001-81", partner.Address{})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, client))

		exists, err := repo.ExistsByDocument(ctx, "11222333000181", 0)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByDocument(ctx, "11222333000181", client.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("deactivated clients still count as city dependents", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormClientRepository(db.DB)
		country := seedCountry(t, db.DB, "Brasil")
		state := seedState(t, db.DB, "São Paulo", "SP", country.ID)
		city := seedCity(t, db.DB, "Campinas", state.ID)
		client := seedClient(t, db.DB, "Ana", city.ID)
		require.NoError(t, repo.Deactivate(ctx, client.ID))

		deps, err := NewGormCityRepository(db.DB).CountDependents(ctx, city.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deps.Clients)
	})

	t.Run("deactivate of missing client is not found", func(t *testing.T) {
		db := newTestDatabase(t)
		err := NewGormClientRepository(db.DB).Deactivate(ctx, 77)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormEmployeeRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)
	repo := NewGormEmployeeRepository(db.DB)

	hired := time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC)
	employee, err := partner.NewEmployee(partner.EmployeeData{
		Name:     "Carlos Lima",
		CPF:      "123.456.789-09",
		Role:     "Motorista",
		HireDate: &hired,
		Salary:   decimal.RequireFromString("3150.456"),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, employee))

	found, err := repo.FindByID(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "Motorista", found.Role)
	assert.True(t, decimal.RequireFromString("3150.46").Equal(found.Salary))
	require.NotNil(t, found.HireDate)
	assert.Equal(t, hired.Format("2006-01-02"), found.HireDate.Format("2006-01-02"))

	filter := shared.DefaultFilter()
	filter.OrderBy = "salario"
	employees, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}

func TestGormSupplierAndTransporterRepositories(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)
	suppliers := NewGormSupplierRepository(db.DB)
	transporters := NewGormTransporterRepository(db.DB)

	supplier, err := partner.NewSupplier("Beta Comércio Ltda", "Beta", "45.723.174/0001-10", partner.Address{})
	require.NoError(t, err)
	require.NoError(t, suppliers.Save(ctx, supplier))

	alpha, err := partner.NewSupplier("Alpha Distribuidora", "Alpha", "11.222.333/0001-81", partner.Address{})
	require.NoError(t, err)
	require.NoError(t, suppliers.Save(ctx, alpha))

	list, err := suppliers.FindAll(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alpha Distribuidora", list[0].CompanyName)

	require.NoError(t, alpha.Update("Alpha Distribuidora S.A.", "Alpha", "11.222.333/0001-81", partner.Address{}, true))
	require.NoError(t, suppliers.Save(ctx, alpha))
	updated, err := suppliers.FindByID(ctx, alpha.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha Distribuidora S.A.", updated.CompanyName)

	transporter, err := partner.NewTransporter("Rápido Cargas", "", "", partner.Address{})
	require.NoError(t, err)
	require.NoError(t, transporters.Save(ctx, transporter))

	filter := shared.DefaultFilter()
	filter.Search = "rápido"
	found, err := transporters.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Empty(t, found[0].CNPJ)
}

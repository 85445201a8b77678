package persistence

import (
	"context"
	"testing"

	"github.com/sistemaempresa/backend/internal/domain/location"
	"github.com/sistemaempresa/backend/internal/domain/partner"
	"github.com/sistemaempresa/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCountry(t *testing.T, db *gorm.DB, name string) *location.Country {
	t.Helper()
	country, err := location.NewCountry(name, "BR", "+55")
	require.NoError(t, err)
	require.NoError(t, NewGormCountryRepository(db).Save(context.Background(), country))
	return country
}

func seedState(t *testing.T, db *gorm.DB, name, uf string, countryID int64) *location.State {
	t.Helper()
	state, err := location.NewState(name, uf, countryID)
	require.NoError(t, err)
	require.NoError(t, NewGormStateRepository(db).Save(context.Background(), state))
	return state
}

func seedCity(t *testing.T, db *gorm.DB, name string, stateID int64) *location.City {
	t.Helper()
	city, err := location.NewCity(name, "", stateID)
	require.NoError(t, err)
	require.NoError(t, NewGormCityRepository(db).Save(context.Background(), city))
	return city
}

func seedClient(t *testing.T, db *gorm.DB, name string, cityID int64) *partner.Client {
	t.Helper()
	client, err := partner.NewClient(name, "", "", partner.Address{CityID: &cityID})
	require.NoError(t, err)
	require.NoError(t, NewGormClientRepository(db).Save(context.Background(), client))
	return client
}

func TestGormCountryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("saves and finds a country", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormCountryRepository(db.DB)

		country := seedCountry(t, db.DB, "Brasil")
		assert.NotZero(t, country.ID)

		found, err := repo.FindByID(ctx, country.ID)
		require.NoError(t, err)
		assert.Equal(t, "Brasil", found.Name)
		assert.Equal(t, "BR", found.Abbreviation)
		assert.Equal(t, "55", found.DialingCode)
	})

	t.Run("lists countries ordered by name", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormCountryRepository(db.DB)
		seedCountry(t, db.DB, "Uruguai")
		seedCountry(t, db.DB, "Argentina")
		seedCountry(t, db.DB, "Brasil")

		countries, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, countries, 3)
		assert.Equal(t, "Argentina", countries[0].Name)
		assert.Equal(t, "Brasil", countries[1].Name)
		assert.Equal(t, "Uruguai", countries[2].Name)
	})

	t.Run("updates an existing country", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormCountryRepository(db.DB)
		country := seedCountry(t, db.DB, "Brasil")

		require.NoError(t, country.Update("República Federativa do Brasil", "BRA", "55"))
		require.NoError(t, repo.Save(ctx, country))

		found, err := repo.FindByID(ctx, country.ID)
		require.NoError(t, err)
		assert.Equal(t, "República Federativa do Brasil", found.Name)
		assert.Equal(t, "BRA", found.Abbreviation)
	})

	t.Run("returns not found for missing country", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormCountryRepository(db.DB)

		_, err := repo.FindByID(ctx, 999)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, 999), shared.ErrNotFound)

		exists, err := repo.ExistsByID(ctx, 999)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("counts states", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormCountryRepository(db.DB)
		country := seedCountry(t, db.DB, "Brasil")
		seedState(t, db.DB, "São Paulo", "SP", country.ID)
		seedState(t, db.DB, "Paraná", "PR", country.ID)

		count, err := repo.CountStates(ctx, country.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("force delete detaches states", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormCountryRepository(db.DB)
		states := NewGormStateRepository(db.DB)
		country := seedCountry(t, db.DB, "Brasil")
		state := seedState(t, db.DB, "São Paulo", "SP", country.ID)

		detached, err := repo.ForceDelete(ctx, country.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), detached)

		_, err = repo.FindByID(ctx, country.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		orphan, err := states.FindByID(ctx, state.ID)
		require.NoError(t, err)
		assert.Nil(t, orphan.CountryID)
		assert.Empty(t, orphan.CountryName)
	})

	t.Run("force delete of missing country rolls back", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormCountryRepository(db.DB)

		_, err := repo.ForceDelete(ctx, 42)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormStateRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("finds a state with its country name", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormStateRepository(db.DB)
		country := seedCountry(t, db.DB, "Brasil")
		state := seedState(t, db.DB, "São Paulo", "sp", country.ID)

		found, err := repo.FindByID(ctx, state.ID)
		require.NoError(t, err)
		assert.Equal(t, "São Paulo", found.Name)
		assert.Equal(t, "SP", found.UF)
		require.NotNil(t, found.CountryID)
		assert.Equal(t, country.ID, *found.CountryID)
		assert.Equal(t, "Brasil", found.CountryName)
	})

	t.Run("filters by country", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormStateRepository(db.DB)
		brasil := seedCountry(t, db.DB, "Brasil")
		argentina := seedCountry(t, db.DB, "Argentina")
		seedState(t, db.DB, "Santa Catarina", "SC", brasil.ID)
		seedState(t, db.DB, "Bahia", "BA", brasil.ID)
		seedState(t, db.DB, "Córdoba", "CB", argentina.ID)

		all, err := repo.FindAll(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		filtered, err := repo.FindAll(ctx, &brasil.ID)
		require.NoError(t, err)
		require.Len(t, filtered, 2)
		assert.Equal(t, "Bahia", filtered[0].Name)
		assert.Equal(t, "Santa Catarina", filtered[1].Name)
		assert.Equal(t, "Brasil", filtered[0].CountryName)
	})

	t.Run("counts cities and force deletes", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormStateRepository(db.DB)
		cities := NewGormCityRepository(db.DB)
		country := seedCountry(t, db.DB, "Brasil")
		state := seedState(t, db.DB, "São Paulo", "SP", country.ID)
		city := seedCity(t, db.DB, "Campinas", state.ID)
		seedCity(t, db.DB, "Santos", state.ID)

		count, err := repo.CountCities(ctx, state.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		detached, err := repo.ForceDelete(ctx, state.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), detached)

		exists, err := repo.ExistsByID(ctx, state.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		orphan, err := cities.FindByID(ctx, city.ID)
		require.NoError(t, err)
		assert.Nil(t, orphan.StateID)
	})

	t.Run("deletes a state without cities", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormStateRepository(db.DB)
		country := seedCountry(t, db.DB, "Brasil")
		state := seedState(t, db.DB, "Acre", "AC", country.ID)

		require.NoError(t, repo.Delete(ctx, state.ID))
		_, err := repo.FindByID(ctx, state.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormCityRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("finds a city with state and country", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormCityRepository(db.DB)
		country := seedCountry(t, db.DB, "Brasil")
		state := seedState(t, db.DB, "São Paulo", "SP", country.ID)
		city := seedCity(t, db.DB, "Campinas", state.ID)

		found, err := repo.FindByID(ctx, city.ID)
		require.NoError(t, err)
		assert.Equal(t, "Campinas", found.Name)
		assert.Equal(t, "São Paulo", found.StateName)
		assert.Equal(t, "SP", found.StateUF)
		require.NotNil(t, found.CountryID)
		assert.Equal(t, country.ID, *found.CountryID)
		assert.Equal(t, "Brasil", found.CountryName)
	})

	t.Run("filters by state", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormCityRepository(db.DB)
		country := seedCountry(t, db.DB, "Brasil")
		sp := seedState(t, db.DB, "São Paulo", "SP", country.ID)
		pr := seedState(t, db.DB, "Paraná", "PR", country.ID)
		seedCity(t, db.DB, "Santos", sp.ID)
		seedCity(t, db.DB, "Campinas", sp.ID)
		seedCity(t, db.DB, "Curitiba", pr.ID)

		cities, err := repo.FindAll(ctx, &sp.ID)
		require.NoError(t, err)
		require.Len(t, cities, 2)
		assert.Equal(t, "Campinas", cities[0].Name)
		assert.Equal(t, "Santos", cities[1].Name)

		none := int64(999)
		cities, err = repo.FindAll(ctx, &none)
		require.NoError(t, err)
		assert.Empty(t, cities)
	})

	t.Run("counts dependents per table", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormCityRepository(db.DB)
		country := seedCountry(t, db.DB, "Brasil")
		state := seedState(t, db.DB, "São Paulo", "SP", country.ID)
		city := seedCity(t, db.DB, "Campinas", state.ID)
		seedClient(t, db.DB, "Ana", city.ID)
		seedClient(t, db.DB, "Bruno", city.ID)

		transporter, err := partner.NewTransporter("Rápido Ltda", "", "", partner.Address{CityID: &city.ID})
		require.NoError(t, err)
		require.NoError(t, NewGormTransporterRepository(db.DB).Save(ctx, transporter))

		deps, err := repo.CountDependents(ctx, city.ID)
		require.NoError(t, err)
		assert.Equal(t, location.Dependents{Clients: 2, Transporters: 1}, deps)
		assert.True(t, deps.Any())
	})

	t.Run("a city without dependents", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormCityRepository(db.DB)
		country := seedCountry(t, db.DB, "Brasil")
		state := seedState(t, db.DB, "São Paulo", "SP", country.ID)
		city := seedCity(t, db.DB, "Campinas", state.ID)

		deps, err := repo.CountDependents(ctx, city.ID)
		require.NoError(t, err)
		assert.False(t, deps.Any())

		require.NoError(t, repo.Delete(ctx, city.ID))
		exists, err := repo.ExistsByID(ctx, city.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("force delete nulls dependents and removes the city", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormCityRepository(db.DB)
		clients := NewGormClientRepository(db.DB)
		country := seedCountry(t, db.DB, "Brasil")
		state := seedState(t, db.DB, "São Paulo", "SP", country.ID)
		city := seedCity(t, db.DB, "Campinas", state.ID)
		client := seedClient(t, db.DB, "Ana", city.ID)

		detached, err := repo.ForceDelete(ctx, city.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), detached.Clients)

		_, err = repo.FindByID(ctx, city.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		kept, err := clients.FindByID(ctx, client.ID)
		require.NoError(t, err)
		assert.Nil(t, kept.CityID)
		assert.True(t, kept.Active)
	})

	t.Run("force delete of missing city leaves dependents untouched", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormCityRepository(db.DB)

		_, err := repo.ForceDelete(ctx, 404)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

package location

import (
	"errors"
	"testing"

	"github.com/sistemaempresa/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	t.Run("creates state successfully", func(t *testing.T) {
		state, err := NewState("São Paulo", "sp", 1)

		require.NoError(t, err)
		assert.Equal(t, "São Paulo", state.Name)
		assert.Equal(t, "SP", state.UF)
		require.NotNil(t, state.CountryID)
		assert.Equal(t, int64(1), *state.CountryID)
		assert.True(t, state.HasCountry())
	})

	t.Run("fails without uf", func(t *testing.T) {
		_, err := NewState("São Paulo", " ", 1)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_UF", domainErr.Code)
	})

	t.Run("fails without country", func(t *testing.T) {
		_, err := NewState("São Paulo", "SP", 0)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_COUNTRY", domainErr.Code)
	})
}

func TestErrCountryNotFound(t *testing.T) {
	err := ErrCountryNotFound(999999)

	assert.Equal(t, shared.CodeValidation, err.Code)
	assert.Contains(t, err.Error(), "999999")
	assert.Contains(t, err.Error(), "não encontrado")
	assert.False(t, errors.Is(err, shared.ErrNotFound))
}

package partner

import (
	"context"
	"testing"

	"github.com/sistemaempresa/backend/internal/domain/partner"
	"github.com/sistemaempresa/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSupplierService_Create_RequiresCNPJ(t *testing.T) {
	repo := new(MockRepository[partner.Supplier])

	_, err := NewSupplierService(repo, new(MockCityLookup)).Create(context.Background(), SupplierRequest{CompanyName: "Beta Ltda"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CNPJ", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSupplierService_Update_CityMustExist(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository[partner.Supplier])
	cities := new(MockCityLookup)
	existing, err := partner.NewSupplier("Beta Ltda", "", "11.222.333/0001-81", partner.Address{})
	require.NoError(t, err)
	existing.ID = 6
	repo.On("FindByID", ctx, int64(6)).Return(existing, nil)
	cities.On("ExistsByID", ctx, int64(1234)).Return(false, nil)

	_, err = NewSupplierService(repo, cities).Update(ctx, 6, SupplierRequest{
		CompanyName:    "Beta Ltda",
		CNPJ:           "11222333000181",
		AddressRequest: AddressRequest{CityID: int64Ptr(1234)},
	})
	assert.EqualError(t, err, "Cidade não encontrada com o ID: 1234")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestTransporterService_CNPJOptional(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository[partner.Transporter])
	repo.On("Save", ctx, mock.AnythingOfType("*partner.Transporter")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*partner.Transporter).ID = 1
		}).
		Return(nil)
	repo.On("FindByID", ctx, int64(1)).Return(&partner.Transporter{
		BaseEntity:  shared.BaseEntity{ID: 1},
		CompanyName: "Rápido Cargas",
		Active:      true,
	}, nil)

	resp, err := NewTransporterService(repo, new(MockCityLookup)).Create(ctx, TransporterRequest{CompanyName: "Rápido Cargas"})
	require.NoError(t, err)
	assert.Equal(t, "Rápido Cargas", resp.CompanyName)
	repo.AssertNotCalled(t, "ExistsByDocument", mock.Anything, mock.Anything, mock.Anything)
}

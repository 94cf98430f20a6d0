package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenmoor/taxbridge/internal/taxes"
)

func TestNewDefaultFactory_NilValidator(t *testing.T) {
	_, err := NewDefaultFactory(nil)
	assert.ErrorIs(t, err, ErrNilValidator)

	assert.Panics(t, func() { MustNewDefaultFactory(nil) })
}

func TestCreateTaxProvider_AvaTax(t *testing.T) {
	factory := MustNewDefaultFactory(NewDefaultValidator())

	p, err := factory.CreateTaxProvider(validAvaTaxConfig(), taxes.TaxCodeMatches{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestCreateTaxProvider_TaxJar(t *testing.T) {
	factory := MustNewDefaultFactory(NewDefaultValidator())

	p, err := factory.CreateTaxProvider(&Config{
		Name:     ProviderNameTaxJar,
		ShipFrom: taxes.MerchantAddress{Country: "US", PostalCode: "97201"},
		TaxJar:   TaxJarSettings{APIToken: "token-1"},
	}, taxes.TaxCodeMatches{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestCreateTaxProvider_NilConfig(t *testing.T) {
	factory := MustNewDefaultFactory(NewDefaultValidator())

	_, err := factory.CreateTaxProvider(nil, nil, nil)
	assert.ErrorIs(t, err, ErrNilConfig)
}

func TestCreateTaxProvider_ValidationFailure(t *testing.T) {
	factory := MustNewDefaultFactory(NewDefaultValidator())

	config := validAvaTaxConfig()
	config.AvaTax.Username = ""

	_, err := factory.CreateTaxProvider(config, nil, nil)
	require.Error(t, err)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, codeInvalid, pe.Code)
}

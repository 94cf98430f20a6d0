package avatax

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/taxes"
)

func TestResolveCustomerCode(t *testing.T) {
	t.Run("user id wins", func(t *testing.T) {
		code, err := resolveCustomerCode(strPtr("42"), strPtr("a@b.com"))
		require.NoError(t, err)
		assert.Equal(t, "42", code)
	})

	t.Run("email fallback", func(t *testing.T) {
		code, err := resolveCustomerCode(nil, strPtr("a@b.com"))
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", code)

		code, err = resolveCustomerCode(strPtr(""), strPtr("a@b.com"))
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", code)
	})

	t.Run("neither present", func(t *testing.T) {
		_, err := resolveCustomerCode(nil, nil)
		assert.True(t, taxes.IsMissingFieldError(err))

		_, err = resolveCustomerCode(strPtr(""), strPtr(""))
		assert.True(t, taxes.IsMissingFieldError(err))
	})
}

func TestRefundOrder_RequiresAutocommit(t *testing.T) {
	p := &Provider{config: Config{IsAutocommit: false}}

	err := p.RefundOrder(context.Background(), &domain.OrderRefundedPayload{
		Order: domain.Order{ID: "order-1", AvataxID: strPtr("doc-1")},
	})

	assert.True(t, taxes.IsConfigurationError(err))
}

func TestOrderConfirmedDocumentType(t *testing.T) {
	recording := &Provider{config: Config{IsDocumentRecordingEnabled: true}}
	assert.Equal(t, DocumentTypeSalesInvoice, recording.orderConfirmedDocumentType())

	quoteOnly := &Provider{config: Config{IsDocumentRecordingEnabled: false}}
	assert.Equal(t, DocumentTypeSalesOrder, quoteOnly.orderConfirmedDocumentType())
}

func TestCalculateTaxesDocumentType(t *testing.T) {
	// Tax quotes must never record a transaction.
	assert.Equal(t, DocumentTypeSalesOrder, calculateTaxesDocumentType())
}

func TestNewProvider_Defaults(t *testing.T) {
	p, err := NewProvider(Config{Username: "u", Password: "p"}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, defaultCompanyCode, p.config.CompanyCode)
	assert.NotNil(t, p.matches)
	assert.NotNil(t, p.logger)
	assert.Equal(t, p.client, p.entities)
}

func TestNewProvider_RequiresCredentials(t *testing.T) {
	_, err := NewProvider(Config{}, nil, nil)
	assert.True(t, taxes.IsConfigurationError(err))
}

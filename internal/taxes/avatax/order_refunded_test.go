package avatax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/taxes"
)

func TestTransformOrderRefunded(t *testing.T) {
	p := &Provider{logger: discardLogger()}

	t.Run("resolves transaction code from metadata", func(t *testing.T) {
		code, model, err := p.transformOrderRefunded(&domain.OrderRefundedPayload{
			Order: domain.Order{ID: "order-1", AvataxID: strPtr("doc-55")},
		})
		require.NoError(t, err)
		assert.Equal(t, "doc-55", code)
		assert.Equal(t, RefundTypeFull, model.RefundType)
		assert.NotEmpty(t, model.RefundDate)
		assert.Empty(t, model.RefundLines)
	})

	t.Run("missing avatax id", func(t *testing.T) {
		_, _, err := p.transformOrderRefunded(&domain.OrderRefundedPayload{
			Order: domain.Order{ID: "order-1"},
		})
		assert.True(t, taxes.IsMissingFieldError(err))
	})

	t.Run("empty avatax id", func(t *testing.T) {
		_, _, err := p.transformOrderRefunded(&domain.OrderRefundedPayload{
			Order: domain.Order{ID: "order-1", AvataxID: strPtr("")},
		})
		assert.True(t, taxes.IsMissingFieldError(err))
	})
}

func TestBuildRefundModel_Partial(t *testing.T) {
	t.Run("collects line SKUs", func(t *testing.T) {
		order := &domain.Order{
			Lines: []domain.OrderLine{
				{ProductSKU: strPtr("SKU-1")},
				{ProductSKU: strPtr("SKU-2")},
			},
		}

		model, err := buildRefundModel(order, RefundTypePartial)
		require.NoError(t, err)
		assert.Equal(t, RefundTypePartial, model.RefundType)
		assert.Equal(t, []string{"SKU-1", "SKU-2"}, model.RefundLines)
	})

	t.Run("line without SKU", func(t *testing.T) {
		order := &domain.Order{
			Lines: []domain.OrderLine{
				{ProductSKU: strPtr("SKU-1")},
				{ProductSKU: nil},
			},
		}

		_, err := buildRefundModel(order, RefundTypePartial)
		assert.True(t, taxes.IsMissingFieldError(err))
	})
}

package avatax

import (
	"time"

	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/taxes"
)

// refundMode is the refund type applied to order-refunded webhooks.
// Partial refunds are modeled below but not yet selected from payload
// data; see buildRefundModel.
const refundMode = RefundTypeFull

// transformOrderRefunded derives the provider transaction code and the
// refund request for an order-refunded payload.
func (p *Provider) transformOrderRefunded(payload *domain.OrderRefundedPayload) (string, RefundTransactionModel, error) {
	p.logger.Debug("transforming order-refunded payload", "order_id", payload.Order.ID)

	if payload.Order.AvataxID == nil || *payload.Order.AvataxID == "" {
		return "", RefundTransactionModel{}, taxes.NewMissingFieldError("order.avataxId")
	}

	model, err := buildRefundModel(&payload.Order, refundMode)
	if err != nil {
		return "", RefundTransactionModel{}, err
	}

	return *payload.Order.AvataxID, model, nil
}

// buildRefundModel builds the refund body for the given refund type. A
// partial refund names the refunded lines by product SKU; every refunded
// line must carry one.
func buildRefundModel(order *domain.Order, refundType RefundType) (RefundTransactionModel, error) {
	model := RefundTransactionModel{
		RefundType: refundType,
		RefundDate: time.Now().Format(apiDateFormat),
	}

	if refundType == RefundTypePartial {
		refundLines := make([]string, 0, len(order.Lines))
		for _, line := range order.Lines {
			if line.ProductSKU == nil || *line.ProductSKU == "" {
				return RefundTransactionModel{}, taxes.NewMissingFieldError("order line product SKU")
			}
			refundLines = append(refundLines, *line.ProductSKU)
		}
		model.RefundLines = refundLines
	}

	return model, nil
}

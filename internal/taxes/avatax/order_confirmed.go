package avatax

import (
	"context"

	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/taxes"
)

// orderConfirmedDocumentType returns the document type for confirmed
// orders. With document recording disabled every request goes out as a
// SalesOrder, which stops the provider from recording the transaction
// even though it still flows through the same create-transaction call.
func (p *Provider) orderConfirmedDocumentType() DocumentType {
	if !p.config.IsDocumentRecordingEnabled {
		return DocumentTypeSalesOrder
	}
	return DocumentTypeSalesInvoice
}

// transformOrderConfirmed builds a create-transaction request from a
// confirmed order, including the resolved document code and calculation
// date so the provider transaction stays addressable for later
// commit/refund/void.
func (p *Provider) transformOrderConfirmed(ctx context.Context, order *domain.Order) (*CreateTransactionModel, error) {
	p.logger.Debug("transforming order-confirmed payload",
		"order_id", order.ID,
		"currency", order.Currency,
		"line_count", len(order.Lines),
	)

	customerCode, err := resolveCustomerCode(order.UserID, order.UserEmail)
	if err != nil {
		return nil, err
	}

	entityUseCode, err := matchEntityUseCode(ctx, p.entities, order.AvataxEntityCode)
	if err != nil {
		return nil, err
	}

	code := resolveDocumentCode(order.AvataxDocumentCode, order.ID)
	date := resolveCalculationDate(order.AvataxTaxCalculationDate, order.Created, p.logger)

	email := ""
	if order.UserEmail != nil {
		email = *order.UserEmail
	}

	return &CreateTransactionModel{
		Code:          code,
		Type:          p.orderConfirmedDocumentType(),
		CompanyCode:   p.config.CompanyCode,
		CustomerCode:  customerCode,
		Commit:        p.config.IsAutocommit,
		EntityUseCode: entityUseCode,
		CurrencyCode:  order.Currency,
		Email:         email,
		Addresses:     resolveAddresses(p.config.Address, order.ShippingAddress),
		Lines:         mapOrderLines(order, p.config, p.matches),
		Date:          date.Format(apiDateFormat),
		Discount:      taxes.SumDiscounts(discountAmounts(order.Discounts)),
	}, nil
}

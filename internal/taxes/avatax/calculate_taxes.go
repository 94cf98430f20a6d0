package avatax

import (
	"context"
	"time"

	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/taxes"
)

// calculateTaxesDocumentType returns the document type for tax quotes.
// Always SalesOrder: calculating a quote must never record a transaction,
// regardless of the document-recording setting.
func calculateTaxesDocumentType() DocumentType {
	return DocumentTypeSalesOrder
}

// transformCalculateTaxes builds a create-transaction request from a
// calculate-taxes webhook payload. The only remote call is the
// entity-use-code lookup; everything else is pure mapping.
func (p *Provider) transformCalculateTaxes(ctx context.Context, payload *domain.CalculateTaxesPayload) (*CreateTransactionModel, error) {
	base := &payload.TaxBase

	p.logger.Debug("transforming calculate-taxes payload",
		"source_object", base.SourceObject.Type,
		"currency", base.Currency,
		"line_count", len(base.Lines),
	)

	customerCode, err := resolveCustomerCode(base.SourceObject.UserID, base.SourceObject.Email)
	if err != nil {
		return nil, err
	}

	entityUseCode, err := matchEntityUseCode(ctx, p.entities, base.SourceObject.AvataxEntityCode)
	if err != nil {
		return nil, err
	}

	return &CreateTransactionModel{
		Type:          calculateTaxesDocumentType(),
		CompanyCode:   p.config.CompanyCode,
		CustomerCode:  customerCode,
		Commit:        p.config.IsAutocommit,
		EntityUseCode: entityUseCode,
		CurrencyCode:  base.Currency,
		Addresses:     resolveAddresses(p.config.Address, base.Address),
		Lines:         mapTaxBaseLines(base, p.config, p.matches),
		Date:          time.Now().Format(apiDateFormat),
		Discount:      taxes.SumDiscounts(discountAmounts(base.Discounts)),
	}, nil
}

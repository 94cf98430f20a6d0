package avatax

import (
	"log/slog"
	"time"
)

// resolveDocumentCode derives the provider document code for an order:
// the merchant's explicit override from order metadata when present,
// otherwise the platform's own order identifier.
func resolveDocumentCode(avataxDocumentCode *string, orderID string) string {
	if avataxDocumentCode != nil && *avataxDocumentCode != "" {
		return *avataxDocumentCode
	}
	return orderID
}

// resolveCalculationDate derives the effective tax calculation date: a
// parseable RFC 3339 override from order metadata when present,
// otherwise the order creation timestamp. An unparseable override is
// logged and falls back rather than failing the transform.
func resolveCalculationDate(override *string, created time.Time, logger *slog.Logger) time.Time {
	if override == nil || *override == "" {
		return created
	}

	date, err := time.Parse(time.RFC3339, *override)
	if err != nil {
		logger.Warn("invalid tax calculation date override, falling back to order creation date",
			"value", *override,
			"error", err,
		)
		return created
	}

	return date
}

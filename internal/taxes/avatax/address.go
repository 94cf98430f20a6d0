package avatax

import (
	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/taxes"
)

// resolveAddresses builds the ship-from/ship-to pair for a transaction:
// the merchant's configured address on one side, the platform address on
// the other. Pure and total; missing optional fields pass through empty.
func resolveAddresses(from taxes.MerchantAddress, to *domain.Address) *AddressesModel {
	return &AddressesModel{
		ShipFrom: fromMerchantAddress(from),
		ShipTo:   fromPlatformAddress(to),
	}
}

// fromMerchantAddress converts the configured ship-from address.
func fromMerchantAddress(a taxes.MerchantAddress) *AddressLocationInfo {
	return &AddressLocationInfo{
		Line1:      a.Line1,
		City:       a.City,
		Region:     a.State,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

// fromPlatformAddress converts a platform address. No normalization of
// free-text fields happens here; that is left to provider-side
// validation.
func fromPlatformAddress(a *domain.Address) *AddressLocationInfo {
	if a == nil {
		return nil
	}
	return &AddressLocationInfo{
		Line1:      a.StreetAddress1,
		Line2:      a.StreetAddress2,
		City:       a.City,
		Region:     a.CountryArea,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

package provider

import (
	"github.com/ravenmoor/taxbridge/internal/taxes"
)

// ProviderName represents specific tax provider implementations.
type ProviderName string

const (
	ProviderNameAvaTax ProviderName = "avatax"
	ProviderNameTaxJar ProviderName = "taxjar"
)

// IsValidProviderName checks if a provider name maps to a known backend.
func IsValidProviderName(name ProviderName) bool {
	switch name {
	case ProviderNameAvaTax, ProviderNameTaxJar:
		return true
	}
	return false
}

// Config carries everything the factory needs to build a tax provider.
// Exactly one backend section is consulted, selected by Name.
type Config struct {
	Name ProviderName

	// ShipFrom is the merchant origin address shared by all backends.
	ShipFrom taxes.MerchantAddress

	AvaTax AvaTaxSettings
	TaxJar TaxJarSettings
}

// AvaTaxSettings are the AvaTax credentials and behavior flags.
type AvaTaxSettings struct {
	Username                   string
	Password                   string
	IsSandbox                  bool
	CompanyCode                string
	IsAutocommit               bool
	IsDocumentRecordingEnabled bool
	ShippingTaxCode            string
}

// TaxJarSettings are the TaxJar credentials.
type TaxJarSettings struct {
	APIToken  string
	IsSandbox bool
}

// ValidationResult represents the outcome of validating provider configuration.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// AddError adds an error message to the validation result.
func (v *ValidationResult) AddError(err string) {
	v.Valid = false
	v.Errors = append(v.Errors, err)
}

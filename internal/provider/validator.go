package provider

// ProviderValidator validates provider configuration before a backend is
// constructed, so misconfiguration is reported as one actionable error
// instead of a failed first API call.
type ProviderValidator interface {
	ValidateConfig(config *Config) ValidationResult
}

// DefaultValidator implements ProviderValidator with per-backend checks.
type DefaultValidator struct{}

// NewDefaultValidator creates a configuration validator.
func NewDefaultValidator() *DefaultValidator {
	return &DefaultValidator{}
}

// ValidateConfig checks the backend section selected by config.Name.
func (v *DefaultValidator) ValidateConfig(config *Config) ValidationResult {
	result := ValidationResult{Valid: true}

	if config == nil {
		result.AddError("config cannot be nil")
		return result
	}

	if !IsValidProviderName(config.Name) {
		result.AddError("unknown provider name: " + string(config.Name))
		return result
	}

	if config.ShipFrom.Country == "" {
		result.AddError("ship-from country is required")
	}
	if config.ShipFrom.PostalCode == "" {
		result.AddError("ship-from postal code is required")
	}

	switch config.Name {
	case ProviderNameAvaTax:
		if config.AvaTax.Username == "" {
			result.AddError("avatax username is required")
		}
		if config.AvaTax.Password == "" {
			result.AddError("avatax password is required")
		}
	case ProviderNameTaxJar:
		if config.TaxJar.APIToken == "" {
			result.AddError("taxjar api token is required")
		}
	}

	return result
}

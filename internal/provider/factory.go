package provider

import (
	"log/slog"

	"github.com/ravenmoor/taxbridge/internal/taxes"
	"github.com/ravenmoor/taxbridge/internal/taxes/avatax"
	"github.com/ravenmoor/taxbridge/internal/taxes/taxjar"
)

// ProviderFactory creates tax provider instances from configuration.
// The factory pattern allows us to instantiate different backend
// implementations based on the ProviderName in the configuration without
// the serving layer needing to know about the concrete implementations.
type ProviderFactory interface {
	// CreateTaxProvider creates a tax provider from configuration.
	// Returns an error if the provider name is unknown or configuration is invalid.
	CreateTaxProvider(config *Config, matches taxes.TaxCodeMatches, logger *slog.Logger) (taxes.Provider, error)
}

// DefaultFactory implements ProviderFactory using constructor functions for
// each backend.
type DefaultFactory struct {
	validator ProviderValidator
}

// NewDefaultFactory creates a provider factory with configuration validation.
// Returns an error if validator is nil.
func NewDefaultFactory(validator ProviderValidator) (*DefaultFactory, error) {
	if validator == nil {
		return nil, ErrNilValidator
	}
	return &DefaultFactory{
		validator: validator,
	}, nil
}

// MustNewDefaultFactory creates a provider factory with configuration validation.
// Panics if validator is nil. Use only during application initialization.
func MustNewDefaultFactory(validator ProviderValidator) *DefaultFactory {
	factory, err := NewDefaultFactory(validator)
	if err != nil {
		panic(err)
	}
	return factory
}

// CreateTaxProvider creates a tax provider based on the provider name in config.
func (f *DefaultFactory) CreateTaxProvider(config *Config, matches taxes.TaxCodeMatches, logger *slog.Logger) (taxes.Provider, error) {
	if config == nil {
		return nil, ErrNilConfig
	}

	result := f.validator.ValidateConfig(config)
	if !result.Valid {
		return nil, ErrValidationFailed(config.Name, result.Errors)
	}

	switch config.Name {
	case ProviderNameAvaTax:
		return avatax.NewProvider(avatax.Config{
			Username:                   config.AvaTax.Username,
			Password:                   config.AvaTax.Password,
			IsSandbox:                  config.AvaTax.IsSandbox,
			CompanyCode:                config.AvaTax.CompanyCode,
			IsAutocommit:               config.AvaTax.IsAutocommit,
			IsDocumentRecordingEnabled: config.AvaTax.IsDocumentRecordingEnabled,
			ShippingTaxCode:            config.AvaTax.ShippingTaxCode,
			Address:                    config.ShipFrom,
		}, matches, logger)

	case ProviderNameTaxJar:
		return taxjar.NewProvider(taxjar.Config{
			APIToken:  config.TaxJar.APIToken,
			IsSandbox: config.TaxJar.IsSandbox,
			Address:   config.ShipFrom,
		}, matches, logger)

	default:
		return nil, ErrUnknownProvider(config.Name)
	}
}

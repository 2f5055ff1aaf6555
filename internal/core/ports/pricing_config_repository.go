package ports

import (
	"context"

	"bakery/internal/core/domain/model/pricing"
)

// PricingConfigRepository defines the persistence contract for the single
// mutable pricing configuration record.
//
// The record is a singleton: there is exactly one row, created with defaults
// the first time it is read and overwritten in place by administrative saves.
// Changing it never reprices existing orders.
type PricingConfigRepository interface {
	// Get retrieves the pricing configuration currently in effect.
	// When no configuration has ever been saved, the default configuration
	// is returned.
	Get(ctx context.Context) (pricing.Config, error)

	// Save overwrites the pricing configuration.
	Save(ctx context.Context, config pricing.Config) error
}

package commands

import (
	"errors"

	"bakery/internal/core/domain/model/pricing"
	"bakery/internal/pkg/guard"
)

// ErrSavePricingConfigCommandIsNotConstructed is returned when the command
// was not created through its constructor.
var ErrSavePricingConfigCommandIsNotConstructed = errors.New(
	"SavePricingConfigCommand must be created via NewSavePricingConfigCommand constructor",
)

// SavePricingConfigCommand replaces the stored pricing configuration.
// The replacement affects future quotes only; existing orders keep the
// totals they were priced with.
type SavePricingConfigCommand struct { //nolint:recvcheck //using for validation
	config pricing.Config

	guard guard.ConstructorGuard
}

// NewSavePricingConfigCommand creates a command to save a pricing configuration.
// The configuration must itself have been built through pricing.NewConfig.
func NewSavePricingConfigCommand(config pricing.Config) (SavePricingConfigCommand, error) {
	saveCommand := SavePricingConfigCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := saveCommand.setConfig(config); err != nil {
		return SavePricingConfigCommand{}, err
	}

	return saveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SavePricingConfigCommand) Validate() error {
	return c.guard.Validate(ErrSavePricingConfigCommandIsNotConstructed)
}

// Config returns the configuration to store.
func (c SavePricingConfigCommand) Config() pricing.Config {
	return c.config
}

func (c *SavePricingConfigCommand) setConfig(config pricing.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	c.config = config
	return nil
}

package pricing

import (
	"errors"
	"fmt"
	"sort"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrConfigIsNotConstructed is returned when a Config instance was not created
	// through the NewConfig factory method.
	ErrConfigIsNotConstructed = errors.New("Config must be created via NewConfig constructor")

	// ErrTierIsNotConstructed is returned when a DiscountTier instance was not
	// created through the NewDiscountTier factory method.
	ErrTierIsNotConstructed = errors.New("DiscountTier must be created via NewDiscountTier constructor")
)

// DiscountTier is a (quantity threshold, discount fraction) pair.
// The highest threshold not exceeding an order's quantity applies.
//
// DiscountTier is a value object: immutable after construction and validated
// by its constructor. The discount fraction must lie in [0, 1).
type DiscountTier struct {
	minQuantity int
	discount    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewDiscountTier creates a validated discount tier.
//
// Parameters:
//   - minQuantity: The smallest order quantity the tier applies to (must be >= 1)
//   - discount: The discount fraction in [0, 1)
//
// Returns an error if either parameter is out of range.
func NewDiscountTier(minQuantity int, discount decimal.Decimal) (DiscountTier, error) {
	if minQuantity < 1 {
		return DiscountTier{}, errs.NewValueIsInvalidErrorWithCause(
			"minQuantity",
			fmt.Errorf("%d is not greater than 0", minQuantity),
		)
	}

	if discount.IsNegative() || discount.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return DiscountTier{}, errs.NewValueIsOutOfRangeError("discount", discount.String(), "0", "1")
	}

	return DiscountTier{
		minQuantity: minQuantity,
		discount:    discount,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// MinQuantity returns the smallest order quantity the tier applies to.
func (t DiscountTier) MinQuantity() int {
	return t.minQuantity
}

// Discount returns the tier's discount fraction.
func (t DiscountTier) Discount() decimal.Decimal {
	return t.discount
}

// Validate ensures the tier was created through NewDiscountTier.
func (t DiscountTier) Validate() error {
	return t.guard.Validate(ErrTierIsNotConstructed)
}

// Config is the bakery's pricing configuration: the per-cookie base price and
// the bulk discount tiers. A single Config record exists at any time; it is
// read by every quote calculation and mutated only by an administrative save.
//
// Config follows these invariants:
//   - Base price must be positive
//   - Every tier must be valid
//   - Tiers are kept sorted by threshold, highest first, so tier selection
//     is a single forward scan
//
// Config is immutable after construction. Changing the stored configuration
// does not retroactively reprice existing orders.
type Config struct {
	basePrice decimal.Decimal
	tiers     []DiscountTier

	guard guard.ConstructorGuard
}

// NewConfig creates a validated pricing configuration.
//
// Parameters:
//   - basePrice: Price per unit cookie before discount (must be positive)
//   - tiers: Bulk discount tiers in any order; duplicates by threshold are rejected
//
// Returns:
//   - Config: The configuration with tiers sorted highest-threshold-first
//   - error: Validation error if any parameter is invalid
func NewConfig(basePrice decimal.Decimal, tiers []DiscountTier) (Config, error) {
	if !basePrice.IsPositive() {
		return Config{}, errs.NewValueIsInvalidErrorWithCause(
			"basePrice",
			fmt.Errorf("%s is not greater than 0", basePrice),
		)
	}

	sorted := make([]DiscountTier, len(tiers))
	copy(sorted, tiers)
	for _, tier := range sorted {
		if err := tier.Validate(); err != nil {
			return Config{}, err
		}
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].minQuantity > sorted[j].minQuantity
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].minQuantity == sorted[i-1].minQuantity {
			return Config{}, errs.NewValueIsInvalidErrorWithCause(
				"tiers",
				fmt.Errorf("duplicate tier threshold %d", sorted[i].minQuantity),
			)
		}
	}

	return Config{
		basePrice: basePrice,
		tiers:     sorted,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// DefaultConfig returns the configuration the bakery starts with before any
// administrative save: $3.50 per cookie with 10/20/30 percent tiers at a
// dozen, two dozen, and fifty cookies.
func DefaultConfig() Config {
	tierDozen, _ := NewDiscountTier(12, decimal.NewFromFloat(0.10))
	tierTwoDozen, _ := NewDiscountTier(24, decimal.NewFromFloat(0.20))
	tierFifty, _ := NewDiscountTier(50, decimal.NewFromFloat(0.30))

	config, _ := NewConfig(decimal.NewFromFloat(3.50), []DiscountTier{tierDozen, tierTwoDozen, tierFifty})
	return config
}

// BasePrice returns the per-cookie price before discount.
func (c Config) BasePrice() decimal.Decimal {
	return c.basePrice
}

// Tiers returns the discount tiers sorted by threshold, highest first.
// The returned slice is a copy; mutating it does not affect the configuration.
func (c Config) Tiers() []DiscountTier {
	tiers := make([]DiscountTier, len(c.tiers))
	copy(tiers, c.tiers)
	return tiers
}

// Validate ensures the configuration was created through NewConfig.
func (c Config) Validate() error {
	return c.guard.Validate(ErrConfigIsNotConstructed)
}

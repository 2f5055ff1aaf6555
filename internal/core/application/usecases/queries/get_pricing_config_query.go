package queries

import (
	"errors"

	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrGetPricingConfigQueryIsNotConstructed is returned when the query was not
// created through its constructor.
var ErrGetPricingConfigQueryIsNotConstructed = errors.New(
	"GetPricingConfigQuery must be created via NewGetPricingConfigQuery constructor",
)

// GetPricingConfigQuery retrieves the pricing configuration currently in
// effect. When nothing has ever been saved the built-in default is returned.
type GetPricingConfigQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPricingConfigQuery creates a query for the current pricing configuration.
func NewGetPricingConfigQuery() GetPricingConfigQuery {
	return GetPricingConfigQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPricingConfigQuery) Validate() error {
	return q.guard.Validate(ErrGetPricingConfigQueryIsNotConstructed)
}

// PricingTierResponse is one bulk discount tier of the configuration view.
type PricingTierResponse struct {
	MinQuantity int
	Discount    decimal.Decimal
}

// GetPricingConfigQueryResponse is the read-side view of the pricing
// configuration, tiers sorted by threshold, highest first.
type GetPricingConfigQueryResponse struct {
	BasePrice decimal.Decimal
	Tiers     []PricingTierResponse
}

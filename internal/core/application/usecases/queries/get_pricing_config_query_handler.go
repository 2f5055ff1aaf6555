package queries

import (
	"context"

	"bakery/internal/core/ports"
)

// GetPricingConfigQueryHandler retrieves the pricing configuration view.
//
// Unlike the other query handlers this one reads through the repository
// rather than raw SQL: the "no row yet means the built-in default" rule
// lives in the repository, and duplicating it here would let the two drift.
type GetPricingConfigQueryHandler struct {
	configRepo ports.PricingConfigRepository
}

// NewGetPricingConfigQueryHandler creates a handler for pricing configuration queries.
func NewGetPricingConfigQueryHandler(configRepo ports.PricingConfigRepository) GetPricingConfigQueryHandler {
	return GetPricingConfigQueryHandler{configRepo: configRepo}
}

// Handle executes the query and returns the configuration currently in effect.
func (h GetPricingConfigQueryHandler) Handle(
	ctx context.Context,
	query GetPricingConfigQuery,
) (GetPricingConfigQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPricingConfigQueryResponse{}, err
	}

	config, err := h.configRepo.Get(ctx)
	if err != nil {
		return GetPricingConfigQueryResponse{}, err
	}

	tiers := config.Tiers()
	response := GetPricingConfigQueryResponse{
		BasePrice: config.BasePrice(),
		Tiers:     make([]PricingTierResponse, 0, len(tiers)),
	}

	for _, tier := range tiers {
		response.Tiers = append(response.Tiers, PricingTierResponse{
			MinQuantity: tier.MinQuantity(),
			Discount:    tier.Discount(),
		})
	}

	return response, nil
}

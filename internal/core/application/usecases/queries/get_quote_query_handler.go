package queries

import (
	"context"

	"bakery/internal/core/ports"
)

// GetQuoteQueryHandler prices quantities for the quote wizard.
// Reads through the repository so the default-configuration rule applies.
type GetQuoteQueryHandler struct {
	configRepo ports.PricingConfigRepository
}

// NewGetQuoteQueryHandler creates a handler for quote queries.
func NewGetQuoteQueryHandler(configRepo ports.PricingConfigRepository) GetQuoteQueryHandler {
	return GetQuoteQueryHandler{configRepo: configRepo}
}

// Handle prices the query's quantity against the stored configuration.
// The quote is advisory: nothing is persisted and the price is only
// guaranteed at order creation time, when the order re-quotes.
func (h GetQuoteQueryHandler) Handle(ctx context.Context, query GetQuoteQuery) (GetQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuoteQueryResponse{}, err
	}

	config, err := h.configRepo.Get(ctx)
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	quote := config.Quote(query.Quantity())

	return GetQuoteQueryResponse{
		Quantity:  quote.Quantity,
		UnitPrice: quote.UnitPrice,
		Total:     quote.Total,
		Discount:  quote.Discount,
	}, nil
}

package commands

import (
	"context"
)

// SavePricingConfigCommandHandler handles administrative pricing updates.
type SavePricingConfigCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewSavePricingConfigCommandHandler creates a handler for pricing saves.
func NewSavePricingConfigCommandHandler(uowFactory PricingUoWFactory) SavePricingConfigCommandHandler {
	return SavePricingConfigCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the replacement configuration within a transaction.
func (h *SavePricingConfigCommandHandler) Handle(ctx context.Context, cmd SavePricingConfigCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PricingConfigRepository().Save(ctx, cmd.Config()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

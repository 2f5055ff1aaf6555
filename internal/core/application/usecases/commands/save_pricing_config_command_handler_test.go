package commands_test

import (
	"context"
	"errors"
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSavePricingConfigCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	tier, err := pricing.NewDiscountTier(10, decimal.NewFromFloat(0.15))
	require.NoError(t, err)
	config, err := pricing.NewConfig(decimal.NewFromFloat(4.00), []pricing.DiscountTier{tier})
	require.NoError(t, err)

	cmd, err := commands.NewSavePricingConfigCommand(config)
	require.NoError(t, err)

	mockRepo := new(MockPricingConfigRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockPricingUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PricingConfigRepository").Return(mockRepo).Once(),
		mockRepo.On("Save", ctx, config).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewSavePricingConfigCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestSavePricingConfigCommandHandler_Handle_SaveError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd, err := commands.NewSavePricingConfigCommand(pricing.DefaultConfig())
	require.NoError(t, err)

	expectedError := errors.New("save failed")
	mockRepo := new(MockPricingConfigRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockPricingUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PricingConfigRepository").Return(mockRepo).Once(),
		mockRepo.On("Save", ctx, mock.Anything).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewSavePricingConfigCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestNewSavePricingConfigCommand_UnconstructedConfig(t *testing.T) {
	var notConstructed pricing.Config
	_, err := commands.NewSavePricingConfigCommand(notConstructed)
	require.Error(t, err)
	assert.ErrorIs(t, err, pricing.ErrConfigIsNotConstructed)
}

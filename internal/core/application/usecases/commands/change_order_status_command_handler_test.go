package commands_test

import (
	"context"
	"errors"
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newPendingOrder builds a freshly created order for handler tests.
func newPendingOrder(t *testing.T, id kernel.UUID, quantity int) *order.Order {
	t.Helper()

	quote := pricing.DefaultConfig().Quote(quantity)
	o, err := order.NewOrder(id, "BKY-TEST", validCustomer(), quantity, "test cookies", order.Customization{}, quote, nil)
	require.NoError(t, err)
	return o
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	orderID := kernel.NewUUID()
	orderAggregate := newPendingOrder(t, orderID, 12)

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Confirmed)
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, orderID).Return(orderAggregate, nil).Once(),
		mockRepo.On("Update", ctx, orderAggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, updated.Status())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_TerminalOrderRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	orderID := kernel.NewUUID()
	orderAggregate := newPendingOrder(t, orderID, 12)
	require.NoError(t, orderAggregate.ChangeStatus(order.Completed))

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.InProgress)
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)

	// Update is never reached: the aggregate rejects the transition
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, orderID).Return(orderAggregate, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.Completed, orderAggregate.Status(), "rejected transition leaves the order untouched")
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Cancelled)
	require.NoError(t, err)

	expectedError := errors.New("order not found")
	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, orderID).Return((*order.Order)(nil), expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestNewChangeOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Unknown)
	require.Error(t, err)
}

package commands_test

import (
	"context"
	"errors"
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	orderID := kernel.NewUUID()
	orderAggregate := newPendingOrder(t, orderID, 12)

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)

	// No Begin/Commit: the two steps run on the main connection
	mock.InOrder(
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, orderID).Return(orderAggregate, nil).Once(),
		mockRepo.On("DeleteItems", ctx, orderID).Return(nil).Once(),
		mockRepo.On("Delete", ctx, orderID).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("orderId", orderID.String())
	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, orderID).Return((*order.Order)(nil), notFound).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockRepo.AssertNotCalled(t, "DeleteItems", mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_ItemDeletionFails(t *testing.T) {
	// Arrange
	ctx := context.Background()
	orderID := kernel.NewUUID()
	orderAggregate := newPendingOrder(t, orderID, 12)

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	require.NoError(t, err)

	expectedError := errors.New("items delete failed")
	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, orderID).Return(orderAggregate, nil).Once(),
		mockRepo.On("DeleteItems", ctx, orderID).Return(expectedError).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	// First step failed: nothing was deleted, so this is a plain failure,
	// not a partial one.
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	var partial *errs.PartialFailureError
	assert.False(t, errors.As(err, &partial))
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_PartialFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	orderID := kernel.NewUUID()
	orderAggregate := newPendingOrder(t, orderID, 12)

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	require.NoError(t, err)

	rowDeleteError := errors.New("order delete failed")
	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, orderID).Return(orderAggregate, nil).Once(),
		mockRepo.On("DeleteItems", ctx, orderID).Return(nil).Once(),
		mockRepo.On("Delete", ctx, orderID).Return(rowDeleteError).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	// Items are gone but the order row remains: the caller must learn the
	// record is now in a partially deleted state.
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPartialFailure)

	var partial *errs.PartialFailureError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, "delete order", partial.Operation)
	assert.Equal(t, orderID.String(), partial.ID)
	assert.Equal(t, rowDeleteError, partial.Cause)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var invalidCmd commands.DeleteOrderCommand

	mockFactory := new(MockOrderUoWFactory)
	handler := commands.NewDeleteOrderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDeleteOrderCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

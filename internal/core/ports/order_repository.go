// Package ports defines the contracts between the core and its external
// collaborators: the record store and the notification dispatcher.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders together
// with their line items.
type OrderRepository interface {
	// Add persists a new order aggregate, including its items, to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// with its items attached.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest first. Aggregation views
	// (customer summaries, revenue dashboards) are folded from this set.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// newest first.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// DeleteItems removes every line item belonging to the order.
	// Part one of the two-step destructive deletion; see DeleteOrder.
	DeleteItems(ctx context.Context, orderID kernel.UUID) error

	// Delete removes the order record itself. Part two of the two-step
	// destructive deletion. Callers must surface a partial failure if this
	// step fails after DeleteItems succeeded.
	Delete(ctx context.Context, orderID kernel.UUID) error
}

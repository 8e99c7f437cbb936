package ports

import (
	"context"

	"bladeshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Commands work through single aggregates; list and export reads bypass
// the repository and go through query handlers.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its store-generated
	// identity back onto the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an ObjectNotFoundError if the order no longer exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identity.
	// Returns an ObjectNotFoundError if no row matches.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes an order permanently. Returns an ObjectNotFoundError
	// if the order is already gone; the store is left unchanged either way.
	Delete(ctx context.Context, id int64) error
}

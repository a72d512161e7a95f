// Package ports defines repository interfaces for the order pricing domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// together with their item and extra records.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and extras.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Item
	// snapshots are immutable; extras are replaced wholesale to match
	// the aggregate's current state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate by its unique identifier
	// and locks its row until the surrounding transaction ends. Status
	// transitions must load through this method so concurrent commands
	// serialize on the order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its order number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// CountByUser returns how many orders the user has. Used by the
	// first-order shipping promotion: the order being priced is not yet
	// persisted, so a count of zero means it would be the first.
	CountByUser(ctx context.Context, userID kernel.UUID) (int, error)

	// GetPendingOlderThan retrieves orders still in pending status whose
	// creation time is before the cutoff. Used by the expiry job.
	GetPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}

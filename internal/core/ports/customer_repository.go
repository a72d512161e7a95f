package ports

import (
	"context"

	"quickcourier/internal/core/domain/model/customer"
	"quickcourier/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.User, error)
}

// AddressRepository defines the persistence contract for delivery addresses.
type AddressRepository interface {
	// Get retrieves an address by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Address, error)
}

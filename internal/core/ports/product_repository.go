package ports

import (
	"context"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products. Stock
// mutations performed through Update must happen inside the same unit of
// work as the order change that caused them.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product, including stock
	// adjustments.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product by its unique identifier and locks
	// its row until the surrounding transaction ends. Stock adjustments
	// must load through this method so concurrent checkouts of the last
	// units serialize instead of both passing the stock check.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)
}

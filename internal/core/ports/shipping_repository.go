package ports

import (
	"context"
	"time"

	"quickcourier/internal/core/domain/model/shipping"
)

// ShippingRuleRepository defines the read contract for shipping rule
// configuration. Rules are authored outside the engine and never mutated
// by it.
type ShippingRuleRepository interface {
	// GetActiveAndValid retrieves the rules that are active and whose
	// validity window contains the given instant, sorted ascending by
	// priority. Ties break deterministically on insertion order.
	GetActiveAndValid(ctx context.Context, at time.Time) ([]*shipping.ShippingRule, error)

	// GetByCode retrieves one rule by its unique code, regardless of its
	// active flag or validity window.
	GetByCode(ctx context.Context, code string) (*shipping.ShippingRule, error)
}

// ShippingExtraRepository defines the read contract for the shipping extra
// catalog.
type ShippingExtraRepository interface {
	// GetActiveByCodes retrieves the active extras matching the given
	// codes, preserving the order the codes were supplied in. Codes that
	// resolve to nothing or to inactive extras are simply absent from the
	// result.
	GetActiveByCodes(ctx context.Context, codes []string) ([]*shipping.ShippingExtra, error)

	// GetByCode retrieves one extra by its unique code, regardless of its
	// active flag.
	GetByCode(ctx context.Context, code string) (*shipping.ShippingExtra, error)

	// GetAllActive retrieves every active extra sorted by display order.
	GetAllActive(ctx context.Context) ([]*shipping.ShippingExtra, error)
}

package queries

import (
	"errors"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetActiveShippingExtrasQueryIsNotConstructed = errors.New(
	"GetActiveShippingExtrasQuery must be created via NewGetActiveShippingExtrasQuery constructor",
)

// GetActiveShippingExtrasQuery retrieves the add-on catalog shown to
// customers during checkout, in display order.
type GetActiveShippingExtrasQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveShippingExtrasQuery creates a query for the active extras.
func NewGetActiveShippingExtrasQuery() GetActiveShippingExtrasQuery {
	return GetActiveShippingExtrasQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveShippingExtrasQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveShippingExtrasQueryIsNotConstructed)
}

// GetActiveShippingExtrasQueryResponse is one extra in the read model.
type GetActiveShippingExtrasQueryResponse struct {
	ID              kernel.UUID
	Code            string
	Name            string
	Description     string
	PriceType       string
	BasePrice       decimal.Decimal
	PercentageValue decimal.Decimal
	DisplayOrder    int
}

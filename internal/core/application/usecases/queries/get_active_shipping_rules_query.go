package queries

import (
	"errors"
	"time"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/guard"
)

var ErrGetActiveShippingRulesQueryIsNotConstructed = errors.New(
	"GetActiveShippingRulesQuery must be created via NewGetActiveShippingRulesQuery constructor",
)

// GetActiveShippingRulesQuery retrieves the shipping rules that are active
// and valid at a given instant, in the priority order the selector would
// evaluate them.
type GetActiveShippingRulesQuery struct {
	at time.Time

	guard guard.ConstructorGuard
}

// NewGetActiveShippingRulesQuery creates a query for the rules valid at the
// given instant.
func NewGetActiveShippingRulesQuery(at time.Time) (GetActiveShippingRulesQuery, error) {
	if at.IsZero() {
		return GetActiveShippingRulesQuery{}, errors.New("at must not be zero")
	}

	return GetActiveShippingRulesQuery{
		at:    at,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveShippingRulesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveShippingRulesQueryIsNotConstructed)
}

// At returns the instant the rules must be valid at.
func (q GetActiveShippingRulesQuery) At() time.Time {
	return q.at
}

// GetActiveShippingRulesQueryResponse is one rule in the read model.
type GetActiveShippingRulesQueryResponse struct {
	ID          kernel.UUID
	Code        string
	Name        string
	Description string
	RuleType    string
	Priority    int
	ValidFrom   *time.Time
	ValidUntil  *time.Time
}

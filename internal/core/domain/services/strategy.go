package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"quickcourier/internal/core/domain/model/order"
	"quickcourier/internal/core/domain/model/shipping"
)

// PricingInput carries everything a shipping strategy may consult, pre-fetched
// by the caller. Keeping the wall clock and the prior-order count here makes
// the pricing computation pure and deterministic: two calls with the same
// input always produce the same quote.
type PricingInput struct {
	// Order is the order being priced. It may not be persisted yet.
	Order *order.Order

	// DeliveryZone is the zone of the order's delivery address.
	DeliveryZone string

	// Now is the wall-clock instant of the calculation, used for rule
	// validity windows and day-of-week promotions.
	Now time.Time

	// PriorOrders is how many orders the owning user already has,
	// excluding the order being priced.
	PriorOrders int
}

// Validate checks the input references a constructed order.
func (in PricingInput) Validate() error {
	if in.Order == nil {
		return order.ErrOrderIsNotConstructed
	}
	return in.Order.Validate()
}

// ShippingStrategy is the contract every shipping cost algorithm implements.
// Strategies are selected by rule-type tag: a ShippingRule names the strategy
// that interprets its configuration.
type ShippingStrategy interface {
	// CalculateCost computes the shipping cost for the input under the
	// given rule. Only called after IsApplicable returned true.
	CalculateCost(input PricingInput, rule *shipping.ShippingRule) decimal.Decimal

	// IsApplicable reports whether this strategy can price the input under
	// the given rule, including the rule's own validity window.
	IsApplicable(input PricingInput, rule *shipping.ShippingRule) bool

	// StrategyType returns the rule-type tag this strategy handles. Must
	// match the ruleType stored on ShippingRule records.
	StrategyType() string

	// Describe returns a human-readable explanation of the calculation.
	Describe(input PricingInput, rule *shipping.ShippingRule) string
}

// ShippingQuote is the result of a shipping calculation: the cost, the rule
// that produced it, and a human-readable trace of the computation.
type ShippingQuote struct {
	Cost        decimal.Decimal
	RuleCode    string
	RuleName    string
	Description string

	// RuleApplied is false when no rule matched and the default fallback
	// cost was used.
	RuleApplied bool
}

func (q ShippingQuote) String() string {
	return fmt.Sprintf("ShippingQuote{cost: %s, rule: %s, applied: %t}",
		q.Cost, q.RuleCode, q.RuleApplied)
}

package services

import (
	"github.com/shopspring/decimal"

	"quickcourier/internal/core/domain/model/shipping"
)

// StrategyTypeFirstOrder is the rule-type tag for first-purchase promotions.
const StrategyTypeFirstOrder = "FIRST_ORDER"

// FirstOrderStrategy makes shipping free on a user's very first order. The
// prior-order count is supplied through PricingInput and must exclude the
// order being priced, which is not persisted yet.
//
// Expected rule configuration:
//
//	{"conditions": {"is_first_order": true}}
type FirstOrderStrategy struct{}

// NewFirstOrderStrategy creates a new FirstOrderStrategy instance.
func NewFirstOrderStrategy() FirstOrderStrategy {
	return FirstOrderStrategy{}
}

// CalculateCost is always zero: the first order ships free.
func (s FirstOrderStrategy) CalculateCost(input PricingInput, rule *shipping.ShippingRule) decimal.Decimal {
	return decimal.Zero
}

// IsApplicable returns true when the rule is currently valid, its
// configuration enables the is_first_order condition, and the user has no
// prior orders.
func (s FirstOrderStrategy) IsApplicable(input PricingInput, rule *shipping.ShippingRule) bool {
	if !rule.IsValidAt(input.Now) {
		return false
	}

	conditions, ok := rule.Config().Section("conditions")
	if !ok {
		return false
	}

	isFirstOrderRequired, ok := conditions.Bool("is_first_order")
	if !ok || !isFirstOrderRequired {
		return false
	}

	return input.PriorOrders == 0
}

// StrategyType returns the rule-type tag this strategy handles.
func (s FirstOrderStrategy) StrategyType() string {
	return StrategyTypeFirstOrder
}

// Describe explains the first-order promotion.
func (s FirstOrderStrategy) Describe(input PricingInput, rule *shipping.ShippingRule) string {
	return "¡Envío GRATIS por primera compra! Bienvenido a QuickCourier"
}

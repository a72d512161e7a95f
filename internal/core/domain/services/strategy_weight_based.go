package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"quickcourier/internal/core/domain/model/shipping"
)

// StrategyTypeWeightBased is the rule-type tag for weight-based pricing.
const StrategyTypeWeightBased = "WEIGHT_BASED"

var (
	defaultBaseRate        = decimal.NewFromInt(5000)
	defaultRatePerKg       = decimal.NewFromInt(2000)
	defaultFreeThresholdKg = decimal.NewFromInt(10)
)

// WeightBasedStrategy prices shipping by the order's total weight:
//
//	cost = base_rate + rate_per_kg * totalWeightKg
//
// unless the weight reaches free_shipping_threshold_kg, in which case
// shipping is free. It is always applicable while its rule is valid, which
// makes it the fallback strategy: register it under the lowest-priority rule
// so it catches everything the more specific strategies decline.
//
// Expected rule configuration (all keys optional):
//
//	{"base_rate": 5000, "rate_per_kg": 2000, "free_shipping_threshold_kg": 10}
type WeightBasedStrategy struct{}

// NewWeightBasedStrategy creates a new WeightBasedStrategy instance.
func NewWeightBasedStrategy() WeightBasedStrategy {
	return WeightBasedStrategy{}
}

// CalculateCost computes base_rate + rate_per_kg * weight, rounded half-up to
// 2 decimals, or zero when the free-shipping threshold is reached.
func (s WeightBasedStrategy) CalculateCost(input PricingInput, rule *shipping.ShippingRule) decimal.Decimal {
	weight := input.Order.TotalWeightKg()

	baseRate := configDecimal(rule, "base_rate", defaultBaseRate)
	ratePerKg := configDecimal(rule, "rate_per_kg", defaultRatePerKg)
	threshold := configDecimal(rule, "free_shipping_threshold_kg", defaultFreeThresholdKg)

	// Threshold is inclusive: exactly at the limit ships free.
	if weight.GreaterThanOrEqual(threshold) {
		return decimal.Zero
	}

	return baseRate.Add(weight.Mul(ratePerKg)).Round(2)
}

// IsApplicable returns true whenever the rule is currently valid. This is
// the default fallback strategy.
func (s WeightBasedStrategy) IsApplicable(input PricingInput, rule *shipping.ShippingRule) bool {
	return rule.IsValidAt(input.Now)
}

// StrategyType returns the rule-type tag this strategy handles.
func (s WeightBasedStrategy) StrategyType() string {
	return StrategyTypeWeightBased
}

// Describe explains the weight-based calculation for the given input.
func (s WeightBasedStrategy) Describe(input PricingInput, rule *shipping.ShippingRule) string {
	weight := input.Order.TotalWeightKg()

	if threshold, ok := rule.Config().Float("free_shipping_threshold_kg"); ok {
		if weight.GreaterThanOrEqual(decimal.NewFromFloat(threshold)) {
			return fmt.Sprintf("¡Envío GRATIS! Peso supera %.2f kg", threshold)
		}
	}

	baseRate := configDecimal(rule, "base_rate", defaultBaseRate)
	ratePerKg := configDecimal(rule, "rate_per_kg", defaultRatePerKg)

	return fmt.Sprintf("Cálculo por peso: Base $%s + $%s por kg (Total: %s kg)",
		baseRate, ratePerKg, weight)
}

// configDecimal reads a numeric config key as a decimal, falling back to the
// given default when the key is absent.
func configDecimal(rule *shipping.ShippingRule, key string, fallback decimal.Decimal) decimal.Decimal {
	if v, ok := rule.Config().Float(key); ok {
		return decimal.NewFromFloat(v)
	}
	return fallback
}

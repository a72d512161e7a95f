package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"quickcourier/internal/core/domain/model/shipping"
)

// StrategyTypeFlatRateZone is the rule-type tag for zone flat rates.
const StrategyTypeFlatRateZone = "FLAT_RATE_ZONE"

var defaultFlatRate = decimal.NewFromInt(8000)

// FlatRateZoneStrategy charges a constant cost for deliveries into one
// configured zone, regardless of weight.
//
// Expected rule configuration:
//
//	{"zone": "Norte", "flat_rate": 8000}
type FlatRateZoneStrategy struct{}

// NewFlatRateZoneStrategy creates a new FlatRateZoneStrategy instance.
func NewFlatRateZoneStrategy() FlatRateZoneStrategy {
	return FlatRateZoneStrategy{}
}

// CalculateCost returns the configured flat rate, or the default when the
// rule does not configure one.
func (s FlatRateZoneStrategy) CalculateCost(input PricingInput, rule *shipping.ShippingRule) decimal.Decimal {
	return configDecimal(rule, "flat_rate", defaultFlatRate)
}

// IsApplicable returns true when the rule is currently valid and the input's
// delivery zone case-insensitively equals the rule's configured zone. A rule
// without a configured zone never applies.
func (s FlatRateZoneStrategy) IsApplicable(input PricingInput, rule *shipping.ShippingRule) bool {
	if !rule.IsValidAt(input.Now) {
		return false
	}

	configuredZone, ok := rule.Config().String("zone")
	if !ok || strings.TrimSpace(configuredZone) == "" {
		return false
	}

	return strings.EqualFold(configuredZone, input.DeliveryZone)
}

// StrategyType returns the rule-type tag this strategy handles.
func (s FlatRateZoneStrategy) StrategyType() string {
	return StrategyTypeFlatRateZone
}

// Describe explains the applied zone flat rate.
func (s FlatRateZoneStrategy) Describe(input PricingInput, rule *shipping.ShippingRule) string {
	zone, ok := rule.Config().String("zone")
	if !ok {
		zone = "N/A"
	}
	return fmt.Sprintf("Tarifa plana para zona %s: $%s",
		zone, configDecimal(rule, "flat_rate", defaultFlatRate))
}

package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"quickcourier/internal/core/domain/model/shipping"
)

// StrategyTypeWeekendPromo is the rule-type tag for weekend discounts.
const StrategyTypeWeekendPromo = "WEEKEND_PROMO"

var (
	weekendBaseShippingCost   = decimal.NewFromInt(10000)
	weekendRatePerKg          = decimal.NewFromInt(2000)
	defaultDiscountPercentage = decimal.NewFromInt(20)
	defaultApplicableDays     = []string{"SATURDAY", "SUNDAY"}
)

// WeekendPromoStrategy discounts a weight-derived base cost when the
// calculation happens on one of the configured days of the week:
//
//	base     = 10000 + 2000 * totalWeightKg
//	discount = round2(base * discount_percentage / 100)
//	cost     = max(base - discount, 0)
//
// Expected rule configuration:
//
//	{"discount_percentage": 20, "applicable_days": ["SATURDAY", "SUNDAY"]}
type WeekendPromoStrategy struct{}

// NewWeekendPromoStrategy creates a new WeekendPromoStrategy instance.
func NewWeekendPromoStrategy() WeekendPromoStrategy {
	return WeekendPromoStrategy{}
}

// CalculateCost applies the configured discount to the weight-derived base
// cost, flooring the result at zero.
func (s WeekendPromoStrategy) CalculateCost(input PricingInput, rule *shipping.ShippingRule) decimal.Decimal {
	discountPercentage := configDecimal(rule, "discount_percentage", defaultDiscountPercentage)

	baseCost := weekendBaseShippingCost.Add(input.Order.TotalWeightKg().Mul(weekendRatePerKg))
	discount := baseCost.Mul(discountPercentage).Div(decimal.NewFromInt(100)).Round(2)

	finalCost := baseCost.Sub(discount)
	if finalCost.IsNegative() {
		return decimal.Zero
	}
	return finalCost
}

// IsApplicable returns true when the rule is currently valid and the
// calculation day is one of the configured applicable days. Day matching is
// case-insensitive.
func (s WeekendPromoStrategy) IsApplicable(input PricingInput, rule *shipping.ShippingRule) bool {
	if !rule.IsValidAt(input.Now) {
		return false
	}

	days, ok := rule.Config().StringSlice("applicable_days")
	if !ok || len(days) == 0 {
		days = defaultApplicableDays
	}

	currentDay := strings.ToUpper(input.Now.Weekday().String())
	for _, day := range days {
		if strings.EqualFold(day, currentDay) {
			return true
		}
	}
	return false
}

// StrategyType returns the rule-type tag this strategy handles.
func (s WeekendPromoStrategy) StrategyType() string {
	return StrategyTypeWeekendPromo
}

// Describe explains the applied weekend discount.
func (s WeekendPromoStrategy) Describe(input PricingInput, rule *shipping.ShippingRule) string {
	discountPercentage := configDecimal(rule, "discount_percentage", defaultDiscountPercentage)
	return fmt.Sprintf("Promo fin de semana - Descuento del %d%% aplicado",
		discountPercentage.IntPart())
}

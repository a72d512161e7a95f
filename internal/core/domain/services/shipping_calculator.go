package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"quickcourier/internal/core/domain/model/shipping"
)

var (
	// ErrRuleNotFound is returned by the forced-rule path when no rule
	// exists under the requested code.
	ErrRuleNotFound = errors.New("shipping rule not found")

	// ErrRuleInactive is returned by the forced-rule path when the rule
	// exists but is inactive or outside its validity window.
	ErrRuleInactive = errors.New("shipping rule is not active")

	// ErrStrategyMissing is returned by the forced-rule path when no
	// strategy is registered for the rule's type tag.
	ErrStrategyMissing = errors.New("no strategy registered for rule type")

	// ErrRuleNotApplicable is returned by the forced-rule path when the
	// rule's strategy declines the order.
	ErrRuleNotApplicable = errors.New("shipping rule is not applicable to this order")
)

// defaultShippingCost is charged when no rule matches an order.
var defaultShippingCost = decimal.NewFromInt(10000)

// ShippingCalculator is a domain service that selects and applies the
// appropriate shipping strategy for an order.
//
// Selection flow:
//  1. The caller supplies the active, currently-valid rules sorted ascending
//     by priority (lower number = evaluated first).
//  2. For each rule, the strategy registered under the rule's type tag is
//     looked up; rules with no registered strategy are skipped with a
//     warning.
//  3. The first rule whose strategy reports it applicable wins: its cost is
//     computed and no further rules are evaluated.
//  4. If no rule matches, a fixed default cost is quoted with RuleApplied
//     set to false and rule code "DEFAULT".
//
// The strategy registry is built once at construction and never mutated, so
// the calculator is safe for concurrent use.
type ShippingCalculator struct {
	strategies map[string]ShippingStrategy
	logger     *slog.Logger
}

// NewShippingCalculator creates a calculator with the given strategies
// indexed by their type tags. Registering two strategies with the same tag
// is a configuration error.
func NewShippingCalculator(logger *slog.Logger, strategies ...ShippingStrategy) (*ShippingCalculator, error) {
	registry := make(map[string]ShippingStrategy, len(strategies))
	for _, strategy := range strategies {
		tag := strategy.StrategyType()
		if _, exists := registry[tag]; exists {
			return nil, fmt.Errorf("duplicate strategy registered for type %q", tag)
		}
		registry[tag] = strategy
	}

	logger.Info("shipping calculator initialized",
		"strategies", len(registry))

	return &ShippingCalculator{
		strategies: registry,
		logger:     logger,
	}, nil
}

// CalculateShipping selects the first applicable rule and quotes its cost.
// The rules must be active, valid at input.Now, and sorted ascending by
// priority; the repository query provides exactly that ordering.
//
// Never fails: when no rule matches, the default quote is returned.
func (c *ShippingCalculator) CalculateShipping(
	input PricingInput,
	rules []*shipping.ShippingRule,
) (ShippingQuote, error) {
	if err := input.Validate(); err != nil {
		return ShippingQuote{}, err
	}

	for _, rule := range rules {
		strategy, ok := c.strategies[rule.RuleType()]
		if !ok {
			c.logger.Warn("no strategy registered for rule type, skipping rule",
				"rule_type", rule.RuleType(),
				"rule_code", rule.Code())
			continue
		}

		if !strategy.IsApplicable(input, rule) {
			continue
		}

		cost := strategy.CalculateCost(input, rule)
		c.logger.Info("shipping rule applied",
			"rule_code", rule.Code(),
			"rule_type", rule.RuleType(),
			"order_number", input.Order.Number(),
			"cost", cost.String())

		return ShippingQuote{
			Cost:        cost,
			RuleCode:    rule.Code(),
			RuleName:    rule.Name(),
			Description: strategy.Describe(input, rule),
			RuleApplied: true,
		}, nil
	}

	c.logger.Warn("no applicable shipping rule found, using default cost",
		"order_number", input.Order.Number(),
		"cost", defaultShippingCost.String())

	return defaultQuote(), nil
}

// CalculateWithRule quotes shipping for one named rule, bypassing the
// priority scan. Unlike CalculateShipping it has no fallback and fails
// loudly:
//
//   - ErrRuleNotFound when rule is nil (the code resolved to nothing)
//   - ErrRuleInactive when the rule is not currently valid
//   - ErrStrategyMissing when no strategy handles the rule's type
//   - ErrRuleNotApplicable when the strategy declines the order
func (c *ShippingCalculator) CalculateWithRule(
	input PricingInput,
	ruleCode string,
	rule *shipping.ShippingRule,
) (ShippingQuote, error) {
	if err := input.Validate(); err != nil {
		return ShippingQuote{}, err
	}

	if rule == nil {
		return ShippingQuote{}, fmt.Errorf("%w: %s", ErrRuleNotFound, ruleCode)
	}

	if !rule.IsValidAt(input.Now) {
		return ShippingQuote{}, fmt.Errorf("%w: %s", ErrRuleInactive, rule.Code())
	}

	strategy, ok := c.strategies[rule.RuleType()]
	if !ok {
		return ShippingQuote{}, fmt.Errorf("%w: %s (rule: %s)",
			ErrStrategyMissing, rule.RuleType(), rule.Code())
	}

	if !strategy.IsApplicable(input, rule) {
		return ShippingQuote{}, fmt.Errorf("%w: %s", ErrRuleNotApplicable, rule.Code())
	}

	cost := strategy.CalculateCost(input, rule)
	c.logger.Info("forced shipping rule applied",
		"rule_code", rule.Code(),
		"order_number", input.Order.Number(),
		"cost", cost.String())

	return ShippingQuote{
		Cost:        cost,
		RuleCode:    rule.Code(),
		RuleName:    rule.Name(),
		Description: strategy.Describe(input, rule),
		RuleApplied: true,
	}, nil
}

// RegisteredStrategyTypes returns the tags of all registered strategies.
func (c *ShippingCalculator) RegisteredStrategyTypes() []string {
	types := make([]string, 0, len(c.strategies))
	for tag := range c.strategies {
		types = append(types, tag)
	}
	return types
}

func defaultQuote() ShippingQuote {
	return ShippingQuote{
		Cost:        defaultShippingCost,
		RuleCode:    "DEFAULT",
		RuleName:    "Tarifa estándar",
		Description: "Costo de envío estándar - Ninguna regla especial aplicable",
		RuleApplied: false,
	}
}

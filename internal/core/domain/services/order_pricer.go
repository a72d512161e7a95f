package services

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"quickcourier/internal/core/domain/model/order"
	"quickcourier/internal/core/domain/model/shipping"
	"quickcourier/internal/pkg/errs"
)

// CostView is a composable read-only view over an order's cost. The base
// view exposes the bare order; each applied extra wraps the previous view
// and contributes its own cost, description, and (rarely) weight.
type CostView interface {
	// Cost returns the total cost of the view: the order's subtotal plus
	// shipping plus every applied extra.
	Cost() decimal.Decimal

	// WeightKg returns the total weight, including mass added by extras
	// such as gift wrapping.
	WeightKg() decimal.Decimal

	// Description returns a human-readable trace of the base order and
	// every applied extra, joined with " + ".
	Description() string

	// AppliedExtraCodes returns the codes of the applied extras in
	// application order.
	AppliedExtraCodes() []string
}

// giftWrapWeightKg is the packaging mass gift wrapping adds to an order.
var giftWrapWeightKg = decimal.NewFromFloat(0.2)

// baseView is the innermost CostView: the bare order before any extras.
type baseView struct {
	order *order.Order
}

func newBaseView(o *order.Order) (baseView, error) {
	if err := o.Validate(); err != nil {
		return baseView{}, err
	}
	return baseView{order: o}, nil
}

func (v baseView) Cost() decimal.Decimal {
	return v.order.Subtotal().Add(v.order.ShippingCost())
}

func (v baseView) WeightKg() decimal.Decimal {
	return v.order.TotalWeightKg()
}

func (v baseView) Description() string {
	return fmt.Sprintf("Pedido base: %s (Subtotal: $%s, Envío: $%s)",
		v.order.Number(), v.order.Subtotal(), v.order.ShippingCost())
}

func (v baseView) AppliedExtraCodes() []string {
	return []string{}
}

// extraView is the shared implementation of every extra decorator. The base
// subtotal is threaded in explicitly so percentage extras are always
// computed against the original order subtotal, never against the cumulative
// cost of inner decorators: percentage extras do not compound on each other
// or on previously applied fixed extras.
type extraView struct {
	inner        CostView
	extra        *shipping.ShippingExtra
	baseSubtotal decimal.Decimal
}

func newExtraView(inner CostView, extra *shipping.ShippingExtra, baseSubtotal decimal.Decimal) (extraView, error) {
	if inner == nil {
		return extraView{}, errs.NewValueIsRequiredError("inner")
	}
	if err := extra.Validate(); err != nil {
		return extraView{}, err
	}
	if !extra.IsActive() {
		return extraView{}, errs.NewConflictError(
			fmt.Sprintf("cannot apply inactive shipping extra: %s", extra.Code()))
	}

	return extraView{
		inner:        inner,
		extra:        extra,
		baseSubtotal: baseSubtotal,
	}, nil
}

func (v extraView) extraCost() decimal.Decimal {
	return v.extra.CalculatePrice(v.baseSubtotal)
}

func (v extraView) Cost() decimal.Decimal {
	return v.inner.Cost().Add(v.extraCost())
}

func (v extraView) WeightKg() decimal.Decimal {
	return v.inner.WeightKg()
}

func (v extraView) Description() string {
	return v.inner.Description() + " + " + fmt.Sprintf("%s +$%s", v.extra.Name(), v.extraCost())
}

func (v extraView) AppliedExtraCodes() []string {
	return append(v.inner.AppliedExtraCodes(), v.extra.Code())
}

// giftWrapView decorates an order with gift wrapping: fixed price plus 200g
// of packaging mass.
type giftWrapView struct {
	extraView
}

func (v giftWrapView) WeightKg() decimal.Decimal {
	return v.inner.WeightKg().Add(giftWrapWeightKg)
}

func (v giftWrapView) Description() string {
	return v.inner.Description() + " + " +
		fmt.Sprintf("Empaque de Regalo (envoltorio especial + tarjeta) +$%s", v.extraCost())
}

// insuranceView decorates an order with shipping insurance, priced as a
// percentage of the base subtotal.
type insuranceView struct {
	extraView
}

func (v insuranceView) Description() string {
	percentage := v.extra.PercentageValue()
	if percentage.IsZero() {
		percentage = decimal.NewFromInt(5)
	}
	return v.inner.Description() + " + " +
		fmt.Sprintf("Seguro (%s%% del subtotal) +$%s", percentage, v.extraCost())
}

// expressView decorates an order with express delivery.
type expressView struct {
	extraView
}

func (v expressView) Description() string {
	return v.inner.Description() + " + " +
		fmt.Sprintf("Entrega Exprés (< 2 horas) +$%s", v.extraCost())
}

// fragileView decorates an order with fragile handling.
type fragileView struct {
	extraView
}

func (v fragileView) Description() string {
	return v.inner.Description() + " + " +
		fmt.Sprintf("Manejo Frágil (cuidado especial) +$%s", v.extraCost())
}

// carbonNeutralView decorates an order with CO2 offsetting for the average
// delivery distance.
type carbonNeutralView struct {
	extraView
}

var (
	co2PerKm          = decimal.NewFromFloat(0.12)
	averageDistanceKm = decimal.NewFromInt(15)
)

func (v carbonNeutralView) estimatedCO2OffsetKg() decimal.Decimal {
	return averageDistanceKm.Mul(co2PerKm).Round(2)
}

func (v carbonNeutralView) Description() string {
	return v.inner.Description() + " + " +
		fmt.Sprintf("Envío Carbono Neutral (compensa %s kg CO2) +$%s",
			v.estimatedCO2OffsetKg(), v.extraCost())
}

// OrderPricer is a domain service that folds shipping extras over an order
// as a decorator chain. Each extra code with dedicated behavior gets its own
// view type; unrecognized codes fall back to the generic decorator, which
// charges the extra's computed price without custom weight or description
// effects.
type OrderPricer struct {
	logger *slog.Logger
}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer(logger *slog.Logger) *OrderPricer {
	return &OrderPricer{logger: logger}
}

// BuildChain wraps the order in its base cost view and applies one decorator
// per extra, in the order supplied. The extras must already be resolved and
// active: constructing a decorator over an inactive extra or a nil input is
// a fatal construction error, not a skip.
func (p *OrderPricer) BuildChain(o *order.Order, extras []*shipping.ShippingExtra) (CostView, error) {
	base, err := newBaseView(o)
	if err != nil {
		return nil, err
	}

	// Percentage extras always price against the original subtotal.
	baseSubtotal := o.Subtotal()

	var view CostView = base
	for _, extra := range extras {
		decorated, err := p.decorate(view, extra, baseSubtotal)
		if err != nil {
			return nil, err
		}
		view = decorated
	}

	if len(extras) > 0 {
		p.logger.Debug("order decorated with extras",
			"order_number", o.Number(),
			"extras", len(extras),
			"cost", view.Cost().String())
	}

	return view, nil
}

// ExtrasCost returns the cost the chain's extras add on top of the bare
// order: chain cost minus subtotal minus shipping.
func (p *OrderPricer) ExtrasCost(o *order.Order, view CostView) decimal.Decimal {
	return view.Cost().Sub(o.Subtotal()).Sub(o.ShippingCost())
}

func (p *OrderPricer) decorate(
	inner CostView,
	extra *shipping.ShippingExtra,
	baseSubtotal decimal.Decimal,
) (CostView, error) {
	base, err := newExtraView(inner, extra, baseSubtotal)
	if err != nil {
		return nil, err
	}

	switch extra.Code() {
	case "GIFT_WRAP":
		return giftWrapView{base}, nil
	case "INSURANCE":
		return insuranceView{base}, nil
	case "EXPRESS":
		return expressView{base}, nil
	case "FRAGILE":
		return fragileView{base}, nil
	case "CARBON_NEUTRAL":
		return carbonNeutralView{base}, nil
	default:
		p.logger.Warn("no dedicated decorator for extra code, using generic decorator",
			"extra_code", extra.Code())
		return base, nil
	}
}

package shipping

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/errs"
	"quickcourier/internal/pkg/guard"
)

// ErrShippingExtraIsNotConstructed is returned when a ShippingExtra instance
// was not created through NewShippingExtra or RestoreShippingExtra.
var ErrShippingExtraIsNotConstructed = errors.New(
	"ShippingExtra must be created via NewShippingExtra or RestoreShippingExtra",
)

// PriceType distinguishes how a shipping extra is priced.
type PriceType int

const (
	// PriceTypeUnknown represents an invalid or undefined price type.
	PriceTypeUnknown PriceType = iota

	// PriceTypeFixed charges the extra's base price regardless of order value.
	PriceTypeFixed

	// PriceTypePercentage charges a percentage of the order's base subtotal.
	PriceTypePercentage
)

func getPriceTypeStrings() map[PriceType]string {
	return map[PriceType]string{
		PriceTypeUnknown:    "UNKNOWN",
		PriceTypeFixed:      "FIXED",
		PriceTypePercentage: "PERCENTAGE",
	}
}

// PriceTypeFromString parses the persisted representation of a price type.
func PriceTypeFromString(s string) (PriceType, error) {
	for pt, str := range getPriceTypeStrings() {
		if pt != PriceTypeUnknown && str == s {
			return pt, nil
		}
	}
	return PriceTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priceType", fmt.Errorf("%q is not a valid price type", s))
}

// Validate checks that the price type is FIXED or PERCENTAGE.
func (pt PriceType) Validate() error {
	if pt != PriceTypeFixed && pt != PriceTypePercentage {
		return errs.NewValueIsInvalidErrorWithCause(
			"priceType", fmt.Errorf("%d is not a valid price type", pt))
	}
	return nil
}

// String implements fmt.Stringer.
func (pt PriceType) String() string {
	if s, ok := getPriceTypeStrings()[pt]; ok {
		return s
	}
	return "UNKNOWN"
}

// ShippingExtra is a catalog entity describing an optional add-on service
// (express delivery, insurance, gift wrapping, ...). The pricing engine
// reads extras and snapshots their applied price onto orders; it never
// mutates the catalog.
type ShippingExtra struct {
	id              kernel.UUID
	code            string
	name            string
	description     string
	priceType       PriceType
	basePrice       decimal.Decimal
	percentageValue decimal.Decimal
	isActive        bool
	displayOrder    int

	guard guard.ConstructorGuard
}

// NewShippingExtra creates an active extra with display order 0.
func NewShippingExtra(
	code, name string,
	priceType PriceType,
	basePrice, percentageValue decimal.Decimal,
) (*ShippingExtra, error) {
	return RestoreShippingExtra(
		kernel.NewUUID(), code, name, "", priceType, basePrice, percentageValue, true, 0,
	)
}

// RestoreShippingExtra reconstructs an extra from persistence with its full
// state, validating every field.
func RestoreShippingExtra(
	id kernel.UUID,
	code, name, description string,
	priceType PriceType,
	basePrice, percentageValue decimal.Decimal,
	isActive bool,
	displayOrder int,
) (*ShippingExtra, error) {
	extra := &ShippingExtra{
		id:           id,
		description:  description,
		isActive:     isActive,
		displayOrder: displayOrder,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		priceType.Validate(),
		extra.setCode(code),
		extra.setName(name),
		extra.setBasePrice(basePrice),
		extra.setPercentageValue(percentageValue),
	); err != nil {
		return nil, err
	}
	extra.priceType = priceType

	return extra, nil
}

// Validate ensures the extra was created through a constructor.
func (e *ShippingExtra) Validate() error {
	if e == nil {
		return ErrShippingExtraIsNotConstructed
	}
	return e.guard.Validate(ErrShippingExtraIsNotConstructed)
}

// ID returns the extra's unique identifier.
func (e *ShippingExtra) ID() kernel.UUID {
	return e.id
}

// Code returns the extra's unique business code.
func (e *ShippingExtra) Code() string {
	return e.code
}

// Name returns the extra's display name.
func (e *ShippingExtra) Name() string {
	return e.name
}

// Description returns the extra's free-form description.
func (e *ShippingExtra) Description() string {
	return e.description
}

// PriceType returns how the extra is priced.
func (e *ShippingExtra) PriceType() PriceType {
	return e.priceType
}

// BasePrice returns the fixed price, used when PriceType is FIXED.
func (e *ShippingExtra) BasePrice() decimal.Decimal {
	return e.basePrice
}

// PercentageValue returns the percentage applied to the order's base
// subtotal, used when PriceType is PERCENTAGE.
func (e *ShippingExtra) PercentageValue() decimal.Decimal {
	return e.percentageValue
}

// IsActive reports whether the extra can currently be applied to orders.
func (e *ShippingExtra) IsActive() bool {
	return e.isActive
}

// DisplayOrder returns the catalog ordering hint.
func (e *ShippingExtra) DisplayOrder() int {
	return e.displayOrder
}

// CalculatePrice computes the price this extra charges for an order with the
// given base subtotal. Fixed extras charge their base price. Percentage
// extras charge round2(subtotal * percentage / 100); a zero percentage
// yields zero. The percentage math multiplies before dividing by 100 to
// avoid precision loss.
func (e *ShippingExtra) CalculatePrice(orderSubtotal decimal.Decimal) decimal.Decimal {
	switch e.priceType {
	case PriceTypeFixed:
		return e.basePrice
	case PriceTypePercentage:
		if e.percentageValue.IsZero() {
			return decimal.Zero
		}
		return orderSubtotal.Mul(e.percentageValue).Div(decimal.NewFromInt(100)).Round(2)
	default:
		return decimal.Zero
	}
}

func (e *ShippingExtra) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	e.code = code
	return nil
}

func (e *ShippingExtra) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	e.name = name
	return nil
}

func (e *ShippingExtra) setBasePrice(basePrice decimal.Decimal) error {
	if basePrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"basePrice", fmt.Errorf("%s is negative", basePrice))
	}
	e.basePrice = basePrice
	return nil
}

func (e *ShippingExtra) setPercentageValue(percentageValue decimal.Decimal) error {
	if percentageValue.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"percentageValue", fmt.Errorf("%s is negative", percentageValue))
	}
	e.percentageValue = percentageValue
	return nil
}

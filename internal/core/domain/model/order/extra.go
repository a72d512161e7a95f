package order

import (
	"errors"

	"github.com/shopspring/decimal"

	"quickcourier/internal/pkg/errs"
	"quickcourier/internal/pkg/guard"
)

// ErrOrderExtraIsNotConstructed is returned when an OrderExtra instance was
// not created through NewOrderExtra or RestoreOrderExtra.
var ErrOrderExtraIsNotConstructed = errors.New(
	"OrderExtra must be created via NewOrderExtra or RestoreOrderExtra",
)

// OrderExtra records one add-on service applied to an order, capturing the
// price that was charged at the time it was added. Later changes to the
// catalog definition do not retroactively affect existing orders.
type OrderExtra struct {
	code         string
	name         string
	appliedPrice decimal.Decimal

	guard guard.ConstructorGuard
}

// NewOrderExtra creates an applied-extra record with its price snapshot.
func NewOrderExtra(code, name string, appliedPrice decimal.Decimal) (OrderExtra, error) {
	extra := OrderExtra{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		extra.setCode(code),
		extra.setAppliedPrice(appliedPrice),
	); err != nil {
		return OrderExtra{}, err
	}

	return extra, nil
}

// RestoreOrderExtra reconstructs an applied-extra record from persistence.
func RestoreOrderExtra(code, name string, appliedPrice decimal.Decimal) (OrderExtra, error) {
	return NewOrderExtra(code, name, appliedPrice)
}

// Validate ensures the record was created through a constructor.
func (e OrderExtra) Validate() error {
	return e.guard.Validate(ErrOrderExtraIsNotConstructed)
}

// Code returns the code of the applied shipping extra.
func (e OrderExtra) Code() string {
	return e.code
}

// Name returns the display name captured when the extra was applied.
func (e OrderExtra) Name() string {
	return e.name
}

// AppliedPrice returns the price charged when the extra was applied.
func (e OrderExtra) AppliedPrice() decimal.Decimal {
	return e.appliedPrice
}

func (e *OrderExtra) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	e.code = code
	return nil
}

func (e *OrderExtra) setAppliedPrice(appliedPrice decimal.Decimal) error {
	if appliedPrice.IsNegative() {
		return errs.NewValueIsInvalidError("appliedPrice")
	}
	e.appliedPrice = appliedPrice
	return nil
}

package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/errs"
	"quickcourier/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was
// not created through NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errors.New(
	"OrderItem must be created via NewOrderItem or RestoreOrderItem",
)

// OrderItem is a snapshot of one product line at the time of purchase.
// Unit price and weight are captured when the order is created and never
// change afterwards, even if the catalog entry does.
type OrderItem struct {
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   decimal.Decimal
	weightKg    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewOrderItem creates an item snapshot for the given product line.
func NewOrderItem(
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice, weightKg decimal.Decimal,
) (OrderItem, error) {
	item := OrderItem{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productID.Validate(),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setWeightKg(weightKg),
	); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs an item snapshot from persistence.
func RestoreOrderItem(
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice, weightKg decimal.Decimal,
) (OrderItem, error) {
	return NewOrderItem(productID, productName, quantity, unitPrice, weightKg)
}

// Validate ensures the item was created through a constructor.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ProductID returns the identifier of the snapshotted product.
func (i OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name captured at purchase time.
func (i OrderItem) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price captured at purchase time.
func (i OrderItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// WeightKg returns the unit weight captured at purchase time.
func (i OrderItem) WeightKg() decimal.Decimal {
	return i.weightKg
}

// Subtotal returns unitPrice multiplied by quantity, rounded to 2 decimals.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity))).Round(2)
}

// TotalWeightKg returns unit weight multiplied by quantity.
func (i OrderItem) TotalWeightKg() decimal.Decimal {
	return i.weightKg.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *OrderItem) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *OrderItem) setWeightKg(weightKg decimal.Decimal) error {
	if weightKg.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightKg", fmt.Errorf("%s is negative", weightKg))
	}
	i.weightKg = weightKg
	return nil
}

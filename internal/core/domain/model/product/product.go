package product

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/errs"
	"quickcourier/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New(
	"Product must be created via NewProduct or RestoreProduct",
)

// Product is a catalog entity supplying the pricing engine with unit price,
// weight, availability, and stock. Stock is decremented when an order is
// created and restored when it is cancelled.
//
// Invariants:
//   - Price and weight are non-negative
//   - Stock never goes below zero; DecreaseStock fails instead
type Product struct {
	id            kernel.UUID
	name          string
	price         decimal.Decimal
	weightKg      decimal.Decimal
	isActive      bool
	stockQuantity int

	guard guard.ConstructorGuard
}

// NewProduct creates an active product with the given stock level.
func NewProduct(name string, price, weightKg decimal.Decimal, stockQuantity int) (*Product, error) {
	return RestoreProduct(kernel.NewUUID(), name, price, weightKg, true, stockQuantity)
}

// RestoreProduct reconstructs a product from persistence, validating every
// field.
func RestoreProduct(
	id kernel.UUID,
	name string,
	price, weightKg decimal.Decimal,
	isActive bool,
	stockQuantity int,
) (*Product, error) {
	p := &Product{
		id:       id,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		p.setName(name),
		p.setPrice(price),
		p.setWeightKg(weightKg),
		p.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// WeightKg returns the unit weight in kilograms.
func (p *Product) WeightKg() decimal.Decimal {
	return p.weightKg
}

// IsActive reports whether the product can be ordered.
func (p *Product) IsActive() bool {
	return p.isActive
}

// StockQuantity returns the units currently in stock.
func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

// HasStock reports whether the product can cover the requested quantity.
func (p *Product) HasStock(quantity int) bool {
	return p.stockQuantity >= quantity
}

// DecreaseStock removes quantity units from stock. Fails with an
// InsufficientStockError naming the available and requested quantities when
// stock cannot cover the request.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !p.HasStock(quantity) {
		return errs.NewInsufficientStockError(p.name, p.stockQuantity, quantity)
	}
	p.stockQuantity -= quantity
	return nil
}

// IncreaseStock returns quantity units to stock, typically on cancellation.
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	p.stockQuantity += quantity
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setWeightKg(weightKg decimal.Decimal) error {
	if weightKg.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightKg", fmt.Errorf("%s is negative", weightKg))
	}
	p.weightKg = weightKg
	return nil
}

func (p *Product) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stockQuantity", fmt.Errorf("%d is negative", stockQuantity))
	}
	p.stockQuantity = stockQuantity
	return nil
}

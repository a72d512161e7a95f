// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full pricing breakdown,
// item snapshots, and applied extras. The requesting user must own the
// order.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, userID)
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//
//	fmt.Printf("Order %s: total $%s\n", result.Number, result.TotalAmount)
type GetOrderQuery struct {
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve the given order on behalf of
// the given user.
func NewGetOrderQuery(orderID, userID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order ID.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// UserID returns the requesting user's ID.
func (q GetOrderQuery) UserID() kernel.UUID {
	return q.userID
}

// GetOrderItemResponse is one item line in the order read model.
type GetOrderItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	WeightKg    decimal.Decimal
}

// GetOrderExtraResponse is one applied extra in the order read model.
type GetOrderExtraResponse struct {
	Code         string
	Name         string
	AppliedPrice decimal.Decimal
}

// GetOrderQueryResponse is the order read model with the complete pricing
// breakdown.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	Number        string
	UserID        kernel.UUID
	AddressID     kernel.UUID
	Status        string
	PaymentStatus string

	Items  []GetOrderItemResponse
	Extras []GetOrderExtraResponse

	Subtotal      decimal.Decimal
	ShippingCost  decimal.Decimal
	ExtrasCost    decimal.Decimal
	TaxRate       decimal.Decimal
	TaxAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	TotalWeightKg decimal.Decimal

	AppliedShippingRuleCode *string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConfirmedAt *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

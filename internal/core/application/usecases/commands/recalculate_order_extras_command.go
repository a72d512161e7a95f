package commands

import (
	"errors"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/guard"
)

var ErrRecalculateOrderExtrasCommandIsNotConstructed = errors.New(
	"RecalculateOrderExtrasCommand must be created via NewRecalculateOrderExtrasCommand constructor",
)

// RecalculateOrderExtrasCommand represents a request to replace the add-on
// extras of an order with a new selection and reprice the order. An empty
// selection removes all extras. The requesting user must own the order.
type RecalculateOrderExtrasCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	userID     kernel.UUID
	extraCodes []string

	guard guard.ConstructorGuard
}

// NewRecalculateOrderExtrasCommand creates a command to reprice the given
// order with the given extras selection on behalf of the given user.
func NewRecalculateOrderExtrasCommand(
	orderID, userID kernel.UUID,
	extraCodes []string,
) (RecalculateOrderExtrasCommand, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return RecalculateOrderExtrasCommand{}, err
	}

	return RecalculateOrderExtrasCommand{
		orderID:    orderID,
		userID:     userID,
		extraCodes: append([]string(nil), extraCodes...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecalculateOrderExtrasCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateOrderExtrasCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c RecalculateOrderExtrasCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the requesting user's ID.
func (c RecalculateOrderExtrasCommand) UserID() kernel.UUID {
	return c.userID
}

// ExtraCodes returns the requested extra codes, in request order.
func (c RecalculateOrderExtrasCommand) ExtraCodes() []string {
	return c.extraCodes
}

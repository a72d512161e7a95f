package commands

import (
	"errors"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a request to confirm a pending order. The
// requesting user must own the order.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm the given order on
// behalf of the given user.
func NewConfirmOrderCommand(orderID, userID kernel.UUID) (ConfirmOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return ConfirmOrderCommand{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the requesting user's ID.
func (c ConfirmOrderCommand) UserID() kernel.UUID {
	return c.userID
}

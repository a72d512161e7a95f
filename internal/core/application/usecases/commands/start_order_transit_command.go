package commands

import (
	"errors"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/guard"
)

var ErrStartOrderTransitCommandIsNotConstructed = errors.New(
	"StartOrderTransitCommand must be created via NewStartOrderTransitCommand constructor",
)

// StartOrderTransitCommand represents a request to hand a confirmed order
// over to the courier network.
type StartOrderTransitCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartOrderTransitCommand creates a command to start transit for the given order.
func NewStartOrderTransitCommand(orderID kernel.UUID) (StartOrderTransitCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartOrderTransitCommand{}, err
	}

	return StartOrderTransitCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderTransitCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c StartOrderTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}

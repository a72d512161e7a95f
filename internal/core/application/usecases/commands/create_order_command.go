package commands

import (
	"errors"
	"fmt"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/errs"
	"quickcourier/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// OrderItemInput is one requested product line in an order creation request.
type OrderItemInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// Validate checks the line references a product and requests at least one
// unit.
func (i OrderItemInput) Validate() error {
	return errors.Join(
		i.ProductID.Validate(),
		func() error {
			if i.Quantity < 1 {
				return errs.NewValueIsInvalidErrorWithCause(
					"quantity", fmt.Errorf("%d is not greater than 0", i.Quantity))
			}
			return nil
		}(),
	)
}

// CreateOrderCommand represents a checkout request: a user orders product
// quantities for delivery to one of their addresses, optionally with add-on
// extras.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID, addressID,
//	    []OrderItemInput{{ProductID: productID, Quantity: 2}},
//	    []string{"GIFT_WRAP"})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	addressID  kernel.UUID
	items      []OrderItemInput
	extraCodes []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command. Validates that the user
// and address references are set, at least one item is requested, and every
// item asks for a positive quantity. Extra codes are optional.
func NewCreateOrderCommand(
	userID, addressID kernel.UUID,
	items []OrderItemInput,
	extraCodes []string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setAddressID(addressID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.extraCodes = append([]string(nil), extraCodes...)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the ordering user's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// AddressID returns the delivery address identifier.
func (c CreateOrderCommand) AddressID() kernel.UUID {
	return c.addressID
}

// Items returns the requested product lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// ExtraCodes returns the requested shipping extra codes, in request order.
func (c CreateOrderCommand) ExtraCodes() []string {
	return c.extraCodes
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]OrderItemInput(nil), items...)
	return nil
}

package commands

import (
	"context"
	"time"
)

// StartOrderTransitCommandHandler moves a confirmed order to in-transit
// status. From this point on the order becomes immutable for the customer.
type StartOrderTransitCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartOrderTransitCommandHandler creates a handler for starting order transit.
func NewStartOrderTransitCommandHandler(uowFactory OrderUoWFactory) StartOrderTransitCommandHandler {
	return StartOrderTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transit command within a transaction.
func (h *StartOrderTransitCommandHandler) Handle(ctx context.Context, cmd StartOrderTransitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.StartTransit(time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"quickcourier/internal/core/domain/model/order"
	"quickcourier/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order that has not yet shipped and
// returns its reserved stock to the products, in the same transaction that
// flips the order status. Orders that were already paid are refunded by the
// cancellation itself.
type CancelOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderStockUoWFactory, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "cancel_order"),
	}
}

// Handle processes the cancellation command.
// The status transition is applied first so that a non-cancellable order
// fails before any stock is touched.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if !aggregate.UserID().IsEqual(cmd.UserID()) {
		return errs.NewConflictError("order does not belong to the requesting user")
	}

	wasPaid := aggregate.PaymentStatus() == order.PaymentPaid

	if err = aggregate.Cancel(time.Now()); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		p, err := productRepo.GetForUpdate(ctx, item.ProductID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				// The product was removed from the catalog after the order
				// was placed. Nothing to restore.
				h.logger.Warn("product missing during stock restore",
					"order_number", aggregate.Number(),
					"product_id", item.ProductID().String())
				continue
			}
			return err
		}

		if err = p.IncreaseStock(item.Quantity()); err != nil {
			return err
		}
		if err = productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("order cancelled",
		"order_number", aggregate.Number(),
		"refunded", wasPaid)

	return nil
}

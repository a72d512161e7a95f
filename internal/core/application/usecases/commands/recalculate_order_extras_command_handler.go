package commands

import (
	"context"
	"log/slog"
	"time"

	"quickcourier/internal/core/domain/model/order"
	"quickcourier/internal/core/domain/services"
	"quickcourier/internal/pkg/errs"
)

// RecalculateOrderExtrasCommandHandler replaces the extras selection of a
// pending or confirmed order and reprices it. Subtotal and shipping cost are
// untouched: only the extras, tax, and total change. Orders in transit or in
// a terminal state reject the operation.
type RecalculateOrderExtrasCommandHandler struct {
	uowFactory OrderExtrasUoWFactory
	pricer     *services.OrderPricer
	logger     *slog.Logger
}

// NewRecalculateOrderExtrasCommandHandler creates a handler for extras
// recalculation.
func NewRecalculateOrderExtrasCommandHandler(
	uowFactory OrderExtrasUoWFactory,
	pricer *services.OrderPricer,
	logger *slog.Logger,
) RecalculateOrderExtrasCommandHandler {
	return RecalculateOrderExtrasCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
		logger:     logger.With("component", "recalculate_extras"),
	}
}

// Handle processes the recalculation command and returns the repriced order.
func (h *RecalculateOrderExtrasCommandHandler) Handle(
	ctx context.Context,
	cmd RecalculateOrderExtrasCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.UserID().IsEqual(cmd.UserID()) {
		return nil, errs.NewConflictError("order does not belong to the requesting user")
	}

	if len(cmd.ExtraCodes()) == 0 {
		if err = aggregate.ClearExtras(now); err != nil {
			return nil, err
		}
	} else {
		extras, err := uow.ShippingExtraRepository().GetActiveByCodes(ctx, cmd.ExtraCodes())
		if err != nil {
			return nil, err
		}

		if len(extras) != len(cmd.ExtraCodes()) {
			h.logger.Warn("some extras not found or inactive",
				"order_number", aggregate.Number(),
				"requested", len(cmd.ExtraCodes()),
				"resolved", len(extras))
		}

		// Fold the decorator chain to validate the selection before
		// recording applied prices on the aggregate.
		if _, err = h.pricer.BuildChain(aggregate, extras); err != nil {
			return nil, err
		}

		applied := make([]order.OrderExtra, 0, len(extras))
		for _, extra := range extras {
			record, err := order.NewOrderExtra(extra.Code(), extra.Name(), extra.CalculatePrice(aggregate.Subtotal()))
			if err != nil {
				return nil, err
			}
			applied = append(applied, record)
		}

		if err = aggregate.ReplaceExtras(applied, now); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("order extras recalculated",
		"order_number", aggregate.Number(),
		"extras_cost", aggregate.ExtrasCost().String(),
		"total", aggregate.TotalAmount().String())

	return aggregate, nil
}

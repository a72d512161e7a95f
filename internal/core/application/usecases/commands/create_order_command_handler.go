package commands

import (
	"context"
	"log/slog"
	"time"

	"quickcourier/internal/core/domain/model/order"
	"quickcourier/internal/core/domain/services"
	"quickcourier/internal/pkg/errs"
)

// CreateOrderCommandHandler orchestrates checkout: it validates the customer
// and the requested products, builds the order with price/weight snapshots,
// selects shipping through the rule engine, folds the requested extras over
// the order, and persists everything while decrementing stock — all inside
// one transaction, so a failure at any step leaves stock untouched.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	calculator *services.ShippingCalculator
	pricer     *services.OrderPricer
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	calculator *services.ShippingCalculator,
	pricer *services.OrderPricer,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		pricer:     pricer,
		logger:     logger.With("component", "create_order"),
	}
}

// Handle processes the checkout command and returns the created order.
//
// Steps:
//  1. Validate the user is active and may place orders, and that the
//     address belongs to the user.
//  2. Validate every product is active and has stock for the requested
//     quantity; fail before any stock is touched otherwise.
//  3. Build the order with item snapshots and compute pre-shipping totals.
//  4. Select shipping through the rule engine and record the applied rule.
//  5. Resolve the requested extras, fold the decorator chain, and capture
//     each applied price.
//  6. Decrement stock and persist the order atomically.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	user, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if !user.CanPlaceOrders() {
		return nil, errs.NewConflictError("user is not allowed to place orders")
	}

	address, err := uow.AddressRepository().Get(ctx, cmd.AddressID())
	if err != nil {
		return nil, err
	}
	if !address.BelongsTo(user.ID()) {
		return nil, errs.NewConflictError("address does not belong to the ordering user")
	}

	productRepo := uow.ProductRepository()
	items := make([]order.OrderItem, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		p, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if !p.IsActive() {
			return nil, errs.NewConflictError("product is not available: " + p.Name())
		}
		if !p.HasStock(line.Quantity) {
			return nil, errs.NewInsufficientStockError(p.Name(), p.StockQuantity(), line.Quantity)
		}

		item, err := order.NewOrderItem(p.ID(), p.Name(), line.Quantity, p.Price(), p.WeightKg())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(order.GenerateNumber(now), user.ID(), address.ID(), items, now)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	priorOrders, err := orderRepo.CountByUser(ctx, user.ID())
	if err != nil {
		return nil, err
	}

	rules, err := uow.ShippingRuleRepository().GetActiveAndValid(ctx, now)
	if err != nil {
		return nil, err
	}

	input := services.PricingInput{
		Order:        o,
		DeliveryZone: address.Zone(),
		Now:          now,
		PriorOrders:  priorOrders,
	}

	quote, err := h.calculator.CalculateShipping(input, rules)
	if err != nil {
		return nil, err
	}

	appliedRuleCode := ""
	if quote.RuleApplied {
		appliedRuleCode = quote.RuleCode
	}
	if err = o.SetShipping(quote.Cost, appliedRuleCode, now); err != nil {
		return nil, err
	}

	if len(cmd.ExtraCodes()) > 0 {
		if err = h.applyExtras(ctx, uow, o, cmd.ExtraCodes(), now); err != nil {
			return nil, err
		}
	}

	// All validations passed: decrement stock only now, inside the same
	// transaction that persists the order. The locked read serializes
	// concurrent checkouts of the same product, so DecreaseStock sees the
	// current count and rejects an oversell instead of both writers
	// passing the earlier stock check.
	for _, line := range cmd.Items() {
		p, err := productRepo.GetForUpdate(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if err = p.DecreaseStock(line.Quantity); err != nil {
			return nil, err
		}
		if err = productRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("order created",
		"order_number", o.Number(),
		"total", o.TotalAmount().String(),
		"shipping_rule", quote.RuleCode)

	return o, nil
}

// applyExtras resolves the requested extra codes, folds the decorator chain
// over the order, and records one applied-price snapshot per resolved extra.
// Codes that resolve to nothing or to inactive extras are skipped with a
// warning; they are visible to the caller only through the shorter list of
// applied extras.
func (h *CreateOrderCommandHandler) applyExtras(
	ctx context.Context,
	uow ShippingRepoFactory,
	o *order.Order,
	extraCodes []string,
	now time.Time,
) error {
	extras, err := uow.ShippingExtraRepository().GetActiveByCodes(ctx, extraCodes)
	if err != nil {
		return err
	}

	if len(extras) != len(extraCodes) {
		h.logger.Warn("some extras not found or inactive",
			"order_number", o.Number(),
			"requested", len(extraCodes),
			"resolved", len(extras))
	}

	chain, err := h.pricer.BuildChain(o, extras)
	if err != nil {
		return err
	}

	applied := make([]order.OrderExtra, 0, len(extras))
	for _, extra := range extras {
		record, err := order.NewOrderExtra(extra.Code(), extra.Name(), extra.CalculatePrice(o.Subtotal()))
		if err != nil {
			return err
		}
		applied = append(applied, record)
	}

	if err = o.ReplaceExtras(applied, now); err != nil {
		return err
	}

	h.logger.Debug("extras applied",
		"order_number", o.Number(),
		"extras", chain.AppliedExtraCodes(),
		"extras_cost", o.ExtrasCost().String())

	return nil
}

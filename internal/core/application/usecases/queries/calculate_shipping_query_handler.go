package queries

import (
	"context"
	"log/slog"
	"time"

	"quickcourier/internal/core/domain/model/order"
	"quickcourier/internal/core/domain/services"
	"quickcourier/internal/core/ports"
	"quickcourier/internal/pkg/errs"
)

// CalculateShippingQueryHandler produces a price preview for a prospective
// order. Unlike the other query handlers it evaluates domain services over
// repository reads instead of scanning a read model: the quote must run
// through exactly the same strategy selection and decorator chain as
// checkout, or previews would drift from charged prices.
type CalculateShippingQueryHandler struct {
	orderRepo   ports.OrderRepository
	productRepo ports.ProductRepository
	addressRepo ports.AddressRepository
	ruleRepo    ports.ShippingRuleRepository
	extraRepo   ports.ShippingExtraRepository
	calculator  *services.ShippingCalculator
	pricer      *services.OrderPricer
	logger      *slog.Logger
}

// NewCalculateShippingQueryHandler creates a handler for shipping quote
// queries.
func NewCalculateShippingQueryHandler(
	orderRepo ports.OrderRepository,
	productRepo ports.ProductRepository,
	addressRepo ports.AddressRepository,
	ruleRepo ports.ShippingRuleRepository,
	extraRepo ports.ShippingExtraRepository,
	calculator *services.ShippingCalculator,
	pricer *services.OrderPricer,
	logger *slog.Logger,
) CalculateShippingQueryHandler {
	return CalculateShippingQueryHandler{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		addressRepo: addressRepo,
		ruleRepo:    ruleRepo,
		extraRepo:   extraRepo,
		calculator:  calculator,
		pricer:      pricer,
		logger:      logger.With("component", "calculate_shipping"),
	}
}

// Handle evaluates the quote. Builds a transient order from the requested
// product lines, runs shipping selection (or the forced rule), folds the
// extras, and returns the pricing breakdown. Nothing is persisted.
func (h CalculateShippingQueryHandler) Handle(
	ctx context.Context,
	query CalculateShippingQuery,
) (*CalculateShippingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	address, err := h.addressRepo.Get(ctx, query.AddressID())
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(query.Items()))
	for _, line := range query.Items() {
		p, err := h.productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if !p.IsActive() {
			return nil, errs.NewConflictError("product is not available: " + p.Name())
		}

		item, err := order.NewOrderItem(p.ID(), p.Name(), line.Quantity, p.Price(), p.WeightKg())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	transient, err := order.NewOrder(order.GenerateNumber(now), query.UserID(), query.AddressID(), items, now)
	if err != nil {
		return nil, err
	}

	priorOrders, err := h.orderRepo.CountByUser(ctx, query.UserID())
	if err != nil {
		return nil, err
	}

	input := services.PricingInput{
		Order:        transient,
		DeliveryZone: address.Zone(),
		Now:          now,
		PriorOrders:  priorOrders,
	}

	quote, err := h.selectShipping(ctx, input, query.RuleCode())
	if err != nil {
		return nil, err
	}

	appliedRuleCode := ""
	if quote.RuleApplied {
		appliedRuleCode = quote.RuleCode
	}
	if err = transient.SetShipping(quote.Cost, appliedRuleCode, now); err != nil {
		return nil, err
	}

	extras, err := h.extraRepo.GetActiveByCodes(ctx, query.ExtraCodes())
	if err != nil {
		return nil, err
	}

	chain, err := h.pricer.BuildChain(transient, extras)
	if err != nil {
		return nil, err
	}

	extraResponses := make([]QuoteExtraResponse, 0, len(extras))
	applied := make([]order.OrderExtra, 0, len(extras))
	for _, extra := range extras {
		price := extra.CalculatePrice(transient.Subtotal())
		extraResponses = append(extraResponses, QuoteExtraResponse{
			Code:         extra.Code(),
			Name:         extra.Name(),
			AppliedPrice: price,
		})

		record, err := order.NewOrderExtra(extra.Code(), extra.Name(), price)
		if err != nil {
			return nil, err
		}
		applied = append(applied, record)
	}

	if len(applied) > 0 {
		if err = transient.ReplaceExtras(applied, now); err != nil {
			return nil, err
		}
	}

	return &CalculateShippingQueryResponse{
		RuleCode:        quote.RuleCode,
		RuleName:        quote.RuleName,
		Description:     quote.Description,
		RuleApplied:     quote.RuleApplied,
		Subtotal:        transient.Subtotal(),
		ShippingCost:    transient.ShippingCost(),
		ExtrasCost:      transient.ExtrasCost(),
		TaxAmount:       transient.TaxAmount(),
		TotalAmount:     transient.TotalAmount(),
		TotalWeightKg:   chain.WeightKg(),
		Extras:          extraResponses,
		CostDescription: chain.Description(),
	}, nil
}

func (h CalculateShippingQueryHandler) selectShipping(
	ctx context.Context,
	input services.PricingInput,
	ruleCode string,
) (services.ShippingQuote, error) {
	if ruleCode != "" {
		rule, err := h.ruleRepo.GetByCode(ctx, ruleCode)
		if err != nil {
			return services.ShippingQuote{}, err
		}
		return h.calculator.CalculateWithRule(input, ruleCode, rule)
	}

	rules, err := h.ruleRepo.GetActiveAndValid(ctx, input.Now)
	if err != nil {
		return services.ShippingQuote{}, err
	}
	return h.calculator.CalculateShipping(input, rules)
}

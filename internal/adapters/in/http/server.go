// Package http exposes the pricing and order lifecycle operations over a
// JSON API built on echo.
package http

import (
	"errors"
	"net/http"
	"time"

	"quickcourier/internal/core/application/usecases/commands"
	"quickcourier/internal/core/application/usecases/queries"
	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/core/domain/model/order"
	"quickcourier/internal/core/domain/services"
	"quickcourier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	confirmOrderHandler      commands.ConfirmOrderCommandHandler
	startTransitHandler      commands.StartOrderTransitCommandHandler
	deliverOrderHandler      commands.DeliverOrderCommandHandler
	markOrderPaidHandler     commands.MarkOrderPaidCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	recalculateExtrasHandler commands.RecalculateOrderExtrasCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getShippingRulesHandler  queries.GetActiveShippingRulesQueryHandler
	getShippingExtrasHandler queries.GetActiveShippingExtrasQueryHandler
	calculateShippingHandler queries.CalculateShippingQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	startTransitHandler commands.StartOrderTransitCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recalculateExtrasHandler commands.RecalculateOrderExtrasCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getShippingRulesHandler queries.GetActiveShippingRulesQueryHandler,
	getShippingExtrasHandler queries.GetActiveShippingExtrasQueryHandler,
	calculateShippingHandler queries.CalculateShippingQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		confirmOrderHandler:      confirmOrderHandler,
		startTransitHandler:      startTransitHandler,
		deliverOrderHandler:      deliverOrderHandler,
		markOrderPaidHandler:     markOrderPaidHandler,
		cancelOrderHandler:       cancelOrderHandler,
		recalculateExtrasHandler: recalculateExtrasHandler,
		getOrderHandler:          getOrderHandler,
		getShippingRulesHandler:  getShippingRulesHandler,
		getShippingExtrasHandler: getShippingExtrasHandler,
		calculateShippingHandler: calculateShippingHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId/extras", s.UpdateOrderExtras)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/transit", s.StartOrderTransit)
	api.POST("/orders/:orderId/deliver", s.DeliverOrder)
	api.POST("/orders/:orderId/pay", s.MarkOrderPaid)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)

	api.GET("/shipping/rules", s.GetShippingRules)
	api.GET("/shipping/extras", s.GetShippingExtras)
	api.POST("/shipping/calculate", s.CalculateShipping)

	e.GET("/health", s.Health)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one requested product line.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the checkout request body.
type CreateOrderRequest struct {
	UserID     string             `json:"user_id"`
	AddressID  string             `json:"address_id"`
	Items      []OrderItemRequest `json:"items"`
	ExtraCodes []string           `json:"extra_codes"`
}

// UpdateOrderExtrasRequest replaces an order's extras selection.
type UpdateOrderExtrasRequest struct {
	ExtraCodes []string `json:"extra_codes"`
}

// CalculateShippingRequest is the price preview request body. RuleCode
// forces a specific shipping rule; leave it empty for automatic selection.
type CalculateShippingRequest struct {
	UserID     string             `json:"user_id"`
	AddressID  string             `json:"address_id"`
	Items      []OrderItemRequest `json:"items"`
	RuleCode   string             `json:"rule_code"`
	ExtraCodes []string           `json:"extra_codes"`
}

// OrderItemResponse is one item line in an order response.
type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	WeightKg    decimal.Decimal `json:"weight_kg"`
}

// OrderExtraResponse is one applied extra in an order response.
type OrderExtraResponse struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	AppliedPrice decimal.Decimal `json:"applied_price"`
}

// OrderResponse is the full order representation with its pricing breakdown.
type OrderResponse struct {
	ID            string `json:"id"`
	Number        string `json:"number"`
	UserID        string `json:"user_id"`
	AddressID     string `json:"address_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`

	Items  []OrderItemResponse  `json:"items"`
	Extras []OrderExtraResponse `json:"extras"`

	Subtotal      decimal.Decimal `json:"subtotal"`
	ShippingCost  decimal.Decimal `json:"shipping_cost"`
	ExtrasCost    decimal.Decimal `json:"extras_cost"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalWeightKg decimal.Decimal `json:"total_weight_kg"`

	AppliedShippingRuleCode *string `json:"applied_shipping_rule_code"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// ShippingRuleResponse is one rule in the active-rules listing.
type ShippingRuleResponse struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	RuleType    string     `json:"rule_type"`
	Priority    int        `json:"priority"`
	ValidFrom   *time.Time `json:"valid_from,omitempty"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
}

// ShippingExtraResponse is one add-on in the extras catalog listing.
type ShippingExtraResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	PriceType       string          `json:"price_type"`
	BasePrice       decimal.Decimal `json:"base_price"`
	PercentageValue decimal.Decimal `json:"percentage_value"`
	DisplayOrder    int             `json:"display_order"`
}

// QuoteExtraResponse is one priced extra in a shipping quote.
type QuoteExtraResponse struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	AppliedPrice decimal.Decimal `json:"applied_price"`
}

// ShippingQuoteResponse is the price preview: the selected rule, the priced
// extras, and the resulting totals.
type ShippingQuoteResponse struct {
	RuleCode    string `json:"rule_code"`
	RuleName    string `json:"rule_name"`
	Description string `json:"description"`
	RuleApplied bool   `json:"rule_applied"`

	Subtotal      decimal.Decimal `json:"subtotal"`
	ShippingCost  decimal.Decimal `json:"shipping_cost"`
	ExtrasCost    decimal.Decimal `json:"extras_cost"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalWeightKg decimal.Decimal `json:"total_weight_kg"`

	Extras []QuoteExtraResponse `json:"extras"`

	CostDescription string `json:"cost_description"`
}

// CreateOrder handles POST /api/v1/orders - checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id: "+err.Error())
	}

	addressID, err := kernel.UUIDFromString(req.AddressID)
	if err != nil {
		return badRequest(ctx, "Invalid address_id: "+err.Error())
	}

	items, err := itemInputs(req.Items)
	if err != nil {
		return badRequest(ctx, "Invalid items: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(userID, addressID, items, req.ExtraCodes)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(created))
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	userID, err := requestUserID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid X-User-ID header: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID, userID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(*result))
}

// UpdateOrderExtras handles PUT /api/v1/orders/:orderId/extras - replaces
// the extras selection and reprices the order. An empty list clears all
// extras.
func (s *Server) UpdateOrderExtras(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	userID, err := requestUserID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid X-User-ID header: "+err.Error())
	}

	var req UpdateOrderExtrasRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecalculateOrderExtrasCommand(orderID, userID, req.ExtraCodes)
	if err != nil {
		return badRequest(ctx, "Invalid extras data: "+err.Error())
	}

	updated, err := s.recalculateExtrasHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// ConfirmOrder handles POST /api/v1/orders/:orderId/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	return s.ownedTransition(ctx, func(orderID, userID kernel.UUID) error {
		cmd, err := commands.NewConfirmOrderCommand(orderID, userID)
		if err != nil {
			return err
		}
		return s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// StartOrderTransit handles POST /api/v1/orders/:orderId/transit.
func (s *Server) StartOrderTransit(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewStartOrderTransitCommand(orderID)
		if err != nil {
			return err
		}
		return s.startTransitHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DeliverOrder handles POST /api/v1/orders/:orderId/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewDeliverOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkOrderPaid handles POST /api/v1/orders/:orderId/pay.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewMarkOrderPaidCommand(orderID)
		if err != nil {
			return err
		}
		return s.markOrderPaidHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.ownedTransition(ctx, func(orderID, userID kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, userID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// GetShippingRules handles GET /api/v1/shipping/rules - lists the rules
// active right now, in selection priority order.
func (s *Server) GetShippingRules(ctx echo.Context) error {
	query, err := queries.NewGetActiveShippingRulesQuery(time.Now())
	if err != nil {
		return internalError(ctx, "Failed to build rules query")
	}

	rules, err := s.getShippingRulesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ShippingRuleResponse, len(rules))
	for i, rule := range rules {
		response[i] = ShippingRuleResponse{
			ID:          rule.ID.String(),
			Code:        rule.Code,
			Name:        rule.Name,
			Description: rule.Description,
			RuleType:    rule.RuleType,
			Priority:    rule.Priority,
			ValidFrom:   rule.ValidFrom,
			ValidUntil:  rule.ValidUntil,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShippingExtras handles GET /api/v1/shipping/extras - lists the add-on
// catalog in display order.
func (s *Server) GetShippingExtras(ctx echo.Context) error {
	query := queries.NewGetActiveShippingExtrasQuery()

	extras, err := s.getShippingExtrasHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ShippingExtraResponse, len(extras))
	for i, extra := range extras {
		response[i] = ShippingExtraResponse{
			ID:              extra.ID.String(),
			Code:            extra.Code,
			Name:            extra.Name,
			Description:     extra.Description,
			PriceType:       extra.PriceType,
			BasePrice:       extra.BasePrice,
			PercentageValue: extra.PercentageValue,
			DisplayOrder:    extra.DisplayOrder,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CalculateShipping handles POST /api/v1/shipping/calculate - prices an
// order without creating it.
func (s *Server) CalculateShipping(ctx echo.Context) error {
	var req CalculateShippingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id: "+err.Error())
	}

	addressID, err := kernel.UUIDFromString(req.AddressID)
	if err != nil {
		return badRequest(ctx, "Invalid address_id: "+err.Error())
	}

	items := make([]queries.QuoteItemInput, len(req.Items))
	for i, item := range req.Items {
		productID, parseErr := kernel.UUIDFromString(item.ProductID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid product_id: "+parseErr.Error())
		}
		items[i] = queries.QuoteItemInput{ProductID: productID, Quantity: item.Quantity}
	}

	query, err := queries.NewCalculateShippingQuery(userID, addressID, items, req.RuleCode, req.ExtraCodes)
	if err != nil {
		return badRequest(ctx, "Invalid quote data: "+err.Error())
	}

	quote, err := s.calculateShippingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	extras := make([]QuoteExtraResponse, len(quote.Extras))
	for i, extra := range quote.Extras {
		extras[i] = QuoteExtraResponse{
			Code:         extra.Code,
			Name:         extra.Name,
			AppliedPrice: extra.AppliedPrice,
		}
	}

	return ctx.JSON(http.StatusOK, ShippingQuoteResponse{
		RuleCode:        quote.RuleCode,
		RuleName:        quote.RuleName,
		Description:     quote.Description,
		RuleApplied:     quote.RuleApplied,
		Subtotal:        quote.Subtotal,
		ShippingCost:    quote.ShippingCost,
		ExtrasCost:      quote.ExtrasCost,
		TaxAmount:       quote.TaxAmount,
		TotalAmount:     quote.TotalAmount,
		TotalWeightKg:   quote.TotalWeightKg,
		Extras:          extras,
		CostDescription: quote.CostDescription,
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// transition runs one order status transition command and maps the result.
func (s *Server) transition(ctx echo.Context, run func(orderID kernel.UUID) error) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	if err = run(orderID); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ownedTransition is transition for the customer-facing operations: it also
// resolves the requesting user so the handler can enforce order ownership.
func (s *Server) ownedTransition(ctx echo.Context, run func(orderID, userID kernel.UUID) error) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid X-User-ID header: "+err.Error())
	}

	return s.transition(ctx, func(orderID kernel.UUID) error {
		return run(orderID, userID)
	})
}

// requestUserID resolves the authenticated user from the X-User-ID header,
// which the auth layer in front of this service sets after validating the
// caller's credentials.
func requestUserID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get("X-User-ID"))
}

func itemInputs(items []OrderItemRequest) ([]commands.OrderItemInput, error) {
	inputs := make([]commands.OrderItemInput, len(items))
	for i, item := range items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, err
		}
		inputs[i] = commands.OrderItemInput{ProductID: productID, Quantity: item.Quantity}
	}
	return inputs, nil
}

func orderResponseFromDomain(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
			WeightKg:    item.WeightKg(),
		}
	}

	extras := make([]OrderExtraResponse, len(o.Extras()))
	for i, extra := range o.Extras() {
		extras[i] = OrderExtraResponse{
			Code:         extra.Code(),
			Name:         extra.Name(),
			AppliedPrice: extra.AppliedPrice(),
		}
	}

	return OrderResponse{
		ID:                      o.ID().String(),
		Number:                  o.Number(),
		UserID:                  o.UserID().String(),
		AddressID:               o.AddressID().String(),
		Status:                  o.Status().String(),
		PaymentStatus:           o.PaymentStatus().String(),
		Items:                   items,
		Extras:                  extras,
		Subtotal:                o.Subtotal(),
		ShippingCost:            o.ShippingCost(),
		ExtrasCost:              o.ExtrasCost(),
		TaxRate:                 o.TaxRate(),
		TaxAmount:               o.TaxAmount(),
		TotalAmount:             o.TotalAmount(),
		TotalWeightKg:           o.TotalWeightKg(),
		AppliedShippingRuleCode: o.AppliedShippingRuleCode(),
		CreatedAt:               o.CreatedAt(),
		UpdatedAt:               o.UpdatedAt(),
		ConfirmedAt:             o.ConfirmedAt(),
		DeliveredAt:             o.DeliveredAt(),
		CancelledAt:             o.CancelledAt(),
	}
}

func orderResponseFromReadModel(r queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
			WeightKg:    item.WeightKg,
		}
	}

	extras := make([]OrderExtraResponse, len(r.Extras))
	for i, extra := range r.Extras {
		extras[i] = OrderExtraResponse{
			Code:         extra.Code,
			Name:         extra.Name,
			AppliedPrice: extra.AppliedPrice,
		}
	}

	return OrderResponse{
		ID:                      r.ID.String(),
		Number:                  r.Number,
		UserID:                  r.UserID.String(),
		AddressID:               r.AddressID.String(),
		Status:                  r.Status,
		PaymentStatus:           r.PaymentStatus,
		Items:                   items,
		Extras:                  extras,
		Subtotal:                r.Subtotal,
		ShippingCost:            r.ShippingCost,
		ExtrasCost:              r.ExtrasCost,
		TaxRate:                 r.TaxRate,
		TaxAmount:               r.TaxAmount,
		TotalAmount:             r.TotalAmount,
		TotalWeightKg:           r.TotalWeightKg,
		AppliedShippingRuleCode: r.AppliedShippingRuleCode,
		CreatedAt:               r.CreatedAt,
		UpdatedAt:               r.UpdatedAt,
		ConfirmedAt:             r.ConfirmedAt,
		DeliveredAt:             r.DeliveredAt,
		CancelledAt:             r.CancelledAt,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// domainError maps application-layer failures to HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, services.ErrRuleNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict) ||
		errors.Is(err, errs.ErrInvalidStateTransition) ||
		errors.Is(err, errs.ErrInsufficientStock):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, services.ErrRuleInactive) ||
		errors.Is(err, services.ErrRuleNotApplicable) ||
		errors.Is(err, services.ErrStrategyMissing):
		status = http.StatusBadRequest
	default:
		return internalError(ctx, "Internal server error")
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

package queries

import (
	"errors"
	"fmt"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/errs"
	"quickcourier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCalculateShippingQueryIsNotConstructed = errors.New(
		"CalculateShippingQuery must be created via NewCalculateShippingQuery constructor",
	)
	ErrQuoteItemsAreRequired = errors.New("at least one item is required")
)

// QuoteItemInput is one product line in a shipping quote request.
type QuoteItemInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// Validate checks the line references a product and requests at least one
// unit.
func (i QuoteItemInput) Validate() error {
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

// CalculateShippingQuery requests a price preview for a prospective order
// without creating it: shipping is selected through the rule engine (or
// forced to a specific rule), extras are folded over the result, and the
// full pricing breakdown is returned. Nothing is persisted and no stock is
// touched.
//
// Example:
//
//	query, err := NewCalculateShippingQuery(userID, addressID,
//	    []QuoteItemInput{{ProductID: productID, Quantity: 2}},
//	    "", []string{"EXPRESS"})
//	if err != nil {
//	    return err
//	}
//
//	quote, err := handler.Handle(ctx, query)
type CalculateShippingQuery struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	addressID  kernel.UUID
	items      []QuoteItemInput
	ruleCode   string
	extraCodes []string

	guard guard.ConstructorGuard
}

// NewCalculateShippingQuery creates a shipping quote query. An empty
// ruleCode lets the rule engine pick; a non-empty one forces that rule and
// fails when it cannot serve the order.
func NewCalculateShippingQuery(
	userID, addressID kernel.UUID,
	items []QuoteItemInput,
	ruleCode string,
	extraCodes []string,
) (CalculateShippingQuery, error) {
	query := CalculateShippingQuery{
		ruleCode: ruleCode,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUserID(userID),
		query.setAddressID(addressID),
		query.setItems(items),
	); err != nil {
		return CalculateShippingQuery{}, err
	}

	query.extraCodes = append([]string(nil), extraCodes...)

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateShippingQuery) Validate() error {
	return q.guard.Validate(ErrCalculateShippingQueryIsNotConstructed)
}

// UserID returns the prospective buyer's identifier.
func (q CalculateShippingQuery) UserID() kernel.UUID {
	return q.userID
}

// AddressID returns the delivery address identifier.
func (q CalculateShippingQuery) AddressID() kernel.UUID {
	return q.addressID
}

// Items returns the requested product lines.
func (q CalculateShippingQuery) Items() []QuoteItemInput {
	return q.items
}

// RuleCode returns the forced rule code, or empty for automatic selection.
func (q CalculateShippingQuery) RuleCode() string {
	return q.ruleCode
}

// ExtraCodes returns the requested extra codes, in request order.
func (q CalculateShippingQuery) ExtraCodes() []string {
	return q.extraCodes
}

func (q *CalculateShippingQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

func (q *CalculateShippingQuery) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	q.addressID = addressID
	return nil
}

func (q *CalculateShippingQuery) setItems(items []QuoteItemInput) error {
	if len(items) == 0 {
		return ErrQuoteItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	q.items = append([]QuoteItemInput(nil), items...)
	return nil
}

// QuoteExtraResponse is one priced extra in the quote breakdown.
type QuoteExtraResponse struct {
	Code         string
	Name         string
	AppliedPrice decimal.Decimal
}

// CalculateShippingQueryResponse is the full price preview: the selected
// shipping rule, the priced extras, and the resulting totals.
type CalculateShippingQueryResponse struct {
	RuleCode    string
	RuleName    string
	Description string
	RuleApplied bool

	Subtotal      decimal.Decimal
	ShippingCost  decimal.Decimal
	ExtrasCost    decimal.Decimal
	TaxAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	TotalWeightKg decimal.Decimal

	Extras []QuoteExtraResponse

	// CostDescription is the human readable breakdown produced by the
	// pricing chain, e.g. "Pedido base: ... + Entrega Exprés (< 2 horas) +$6000".
	CostDescription string
}

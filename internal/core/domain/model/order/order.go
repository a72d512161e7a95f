package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/errs"
	"quickcourier/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// DefaultTaxRate is the tax percentage applied when no explicit rate is
// configured for the order.
var DefaultTaxRate = decimal.NewFromInt(19)

// Order represents a customer order in the system. It is the aggregate root
// that owns the item snapshots, the applied extras, the monetary totals, and
// the delivery/payment state machines.
//
// Order follows these invariants:
//   - Must have at least one item
//   - totalAmount == subtotal + shippingCost + extrasCost + taxAmount
//   - taxAmount == round2((subtotal + shippingCost + extrasCost) * taxRate / 100)
//   - Status transitions follow defined business rules
//   - Terminal orders (delivered or cancelled) are immutable
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id        kernel.UUID
	number    string
	userID    kernel.UUID
	addressID kernel.UUID

	status        Status
	paymentStatus PaymentStatus

	items  []OrderItem
	extras []OrderExtra

	subtotal      decimal.Decimal
	shippingCost  decimal.Decimal
	extrasCost    decimal.Decimal
	taxRate       decimal.Decimal
	taxAmount     decimal.Decimal
	totalAmount   decimal.Decimal
	totalWeightKg decimal.Decimal

	appliedShippingRuleCode *string

	createdAt   time.Time
	updatedAt   time.Time
	confirmedAt *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new pending order from item snapshots and computes its
// initial totals. Shipping and extras are not yet included; the caller sets
// them through SetShipping and ReplaceExtras.
//
// Parameters:
//   - number: Human-readable order number (see GenerateNumber)
//   - userID: Owning user reference
//   - addressID: Delivery address reference
//   - items: At least one item snapshot
//   - now: Creation timestamp
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	number string,
	userID, addressID kernel.UUID,
	items []OrderItem,
	now time.Time,
) (*Order, error) {
	return RestoreOrder(RestoreParams{
		ID:            kernel.NewUUID(),
		Number:        number,
		UserID:        userID,
		AddressID:     addressID,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		Items:         items,
		TaxRate:       DefaultTaxRate,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

// RestoreParams carries every persisted field of an order for
// reconstruction.
type RestoreParams struct {
	ID            kernel.UUID
	Number        string
	UserID        kernel.UUID
	AddressID     kernel.UUID
	Status        Status
	PaymentStatus PaymentStatus
	Items         []OrderItem
	Extras        []OrderExtra
	ShippingCost  decimal.Decimal
	TaxRate       decimal.Decimal

	AppliedShippingRuleCode *string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConfirmedAt *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

// RestoreOrder reconstructs an order from persistence, validating every
// field and recomputing the derived totals from the persisted components.
func RestoreOrder(params RestoreParams) (*Order, error) {
	o := &Order{
		id:                      params.ID,
		userID:                  params.UserID,
		addressID:               params.AddressID,
		appliedShippingRuleCode: params.AppliedShippingRuleCode,
		createdAt:               params.CreatedAt,
		updatedAt:               params.UpdatedAt,
		confirmedAt:             params.ConfirmedAt,
		deliveredAt:             params.DeliveredAt,
		cancelledAt:             params.CancelledAt,
		guard:                   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		params.ID.Validate(),
		params.UserID.Validate(),
		params.AddressID.Validate(),
		o.setNumber(params.Number),
		o.setStatus(params.Status),
		o.setPaymentStatus(params.PaymentStatus),
		o.setItems(params.Items),
		o.setExtras(params.Extras),
		o.setShippingCost(params.ShippingCost),
		o.setTaxRate(params.TaxRate),
	); err != nil {
		return nil, err
	}

	o.calculateTotals()

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// AddressID returns the delivery address identifier.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// Status returns the current delivery status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Items returns a copy of the order's item snapshots.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// Extras returns a copy of the order's applied extras, in application order.
func (o *Order) Extras() []OrderExtra {
	extras := make([]OrderExtra, len(o.extras))
	copy(extras, o.extras)
	return extras
}

// Subtotal returns the sum of all item subtotals.
func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

// ShippingCost returns the shipping cost set by the rule selector.
func (o *Order) ShippingCost() decimal.Decimal {
	return o.shippingCost
}

// ExtrasCost returns the sum of the applied extras' prices.
func (o *Order) ExtrasCost() decimal.Decimal {
	return o.extrasCost
}

// TaxRate returns the tax percentage applied to the order.
func (o *Order) TaxRate() decimal.Decimal {
	return o.taxRate
}

// TaxAmount returns the computed tax.
func (o *Order) TaxAmount() decimal.Decimal {
	return o.taxAmount
}

// TotalAmount returns the grand total: subtotal + shipping + extras + tax.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// TotalWeightKg returns the summed item weight in kilograms.
func (o *Order) TotalWeightKg() decimal.Decimal {
	return o.totalWeightKg
}

// AppliedShippingRuleCode returns the code of the shipping rule that priced
// the order, or nil when the default fallback cost was used.
func (o *Order) AppliedShippingRuleCode() *string {
	return o.appliedShippingRuleCode
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ConfirmedAt returns when the order was confirmed, or nil.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// CanBeCancelled reports whether the order may still be cancelled (and, by
// the same rule, have its extras recalculated).
func (o *Order) CanBeCancelled() bool {
	return o.status.IsCancellable()
}

// SetShipping records the shipping cost and the rule that produced it, then
// recomputes the totals. An empty ruleCode means the default fallback cost
// was used and no rule is recorded.
//
// Fails if the order has already reached a terminal status.
func (o *Order) SetShipping(cost decimal.Decimal, ruleCode string, now time.Time) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if err := o.setShippingCost(cost); err != nil {
		return err
	}

	if ruleCode == "" {
		o.appliedShippingRuleCode = nil
	} else {
		o.appliedShippingRuleCode = &ruleCode
	}

	o.calculateTotals()
	o.updatedAt = now
	return nil
}

// ReplaceExtras swaps the order's applied extras for a new set and
// recomputes the totals. Used both during creation and by extras
// recalculation.
//
// Fails with a ConflictError if the order is no longer cancellable, since
// extras recalculation is only legal while the order is still mutable.
func (o *Order) ReplaceExtras(extras []OrderExtra, now time.Time) error {
	if !o.CanBeCancelled() {
		return errs.NewConflictError(
			fmt.Sprintf("order %s is %s and can no longer be modified", o.number, o.status))
	}
	if err := o.setExtras(extras); err != nil {
		return err
	}

	o.calculateTotals()
	o.updatedAt = now
	return nil
}

// ClearExtras removes all applied extras and recomputes the totals.
func (o *Order) ClearExtras(now time.Time) error {
	return o.ReplaceExtras(nil, now)
}

// Confirm transitions the order from Pending to Confirmed and stamps the
// confirmation time. The confirmation timestamp is set at most once.
func (o *Order) Confirm(now time.Time) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.confirmedAt == nil {
		o.confirmedAt = &now
	}
	o.updatedAt = now
	return nil
}

// StartTransit transitions the order from Confirmed to InTransit.
func (o *Order) StartTransit(now time.Time) error {
	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Deliver transitions the order from InTransit to Delivered and stamps the
// delivery time. Delivered is terminal.
func (o *Order) Deliver(now time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.deliveredAt == nil {
		o.deliveredAt = &now
	}
	o.updatedAt = now
	return nil
}

// Cancel transitions the order to Cancelled and stamps the cancellation
// time. A captured payment is refunded. The caller is responsible for
// restoring product stock for every item.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.paymentStatus == PaymentPaid {
		refunded, err := o.paymentStatus.Refund()
		if err != nil {
			return err
		}
		o.paymentStatus = refunded
	}
	if o.cancelledAt == nil {
		o.cancelledAt = &now
	}
	o.updatedAt = now
	return nil
}

// MarkPaid transitions the payment status from Pending to Paid.
func (o *Order) MarkPaid(now time.Time) error {
	newStatus, err := o.paymentStatus.Pay()
	if err != nil {
		return err
	}

	o.paymentStatus = newStatus
	o.updatedAt = now
	return nil
}

// calculateTotals recomputes every derived monetary field from the items,
// the shipping cost, and the applied extras:
//
//	subtotal      = Σ item.Subtotal()
//	totalWeightKg = Σ item.TotalWeightKg(), rounded to 3 decimals
//	extrasCost    = Σ extra.AppliedPrice()
//	taxAmount     = round2((subtotal + shippingCost + extrasCost) * taxRate / 100)
//	totalAmount   = subtotal + shippingCost + extrasCost + taxAmount
//
// The computation is idempotent and is re-run after every mutation.
func (o *Order) calculateTotals() {
	subtotal := decimal.Zero
	weight := decimal.Zero
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Subtotal())
		weight = weight.Add(item.TotalWeightKg())
	}

	extrasCost := decimal.Zero
	for _, extra := range o.extras {
		extrasCost = extrasCost.Add(extra.AppliedPrice())
	}

	base := subtotal.Add(o.shippingCost).Add(extrasCost)

	o.subtotal = subtotal.Round(2)
	o.totalWeightKg = weight.Round(3)
	o.extrasCost = extrasCost.Round(2)
	o.taxAmount = base.Mul(o.taxRate).Div(decimal.NewFromInt(100)).Round(2)
	o.totalAmount = base.Add(o.taxAmount).Round(2)
}

func (o *Order) ensureMutable() error {
	if o.status.IsTerminal() {
		return errs.NewConflictError(
			fmt.Sprintf("order %s is %s and can no longer be modified", o.number, o.status))
	}
	return nil
}

func (o *Order) setNumber(number string) error {
	if err := ValidateNumber(number); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}

func (o *Order) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]OrderItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setExtras(extras []OrderExtra) error {
	for _, extra := range extras {
		if err := extra.Validate(); err != nil {
			return err
		}
	}
	o.extras = make([]OrderExtra, len(extras))
	copy(o.extras, extras)
	return nil
}

func (o *Order) setShippingCost(shippingCost decimal.Decimal) error {
	if shippingCost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"shippingCost", fmt.Errorf("%s is negative", shippingCost))
	}
	o.shippingCost = shippingCost.Round(2)
	return nil
}

func (o *Order) setTaxRate(taxRate decimal.Decimal) error {
	if taxRate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"taxRate", fmt.Errorf("%s is negative", taxRate))
	}
	o.taxRate = taxRate
	return nil
}

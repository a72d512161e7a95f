package order

import (
	"fmt"

	"quickcourier/internal/pkg/errs"
)

// PaymentStatus tracks the payment side of an order, independently of the
// delivery lifecycle.
//
// Transitions:
//
//	PaymentPending ──> PaymentPaid ──> PaymentRefunded
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means the order has not been paid yet.
	PaymentPending

	// PaymentPaid means payment was captured.
	PaymentPaid

	// PaymentRefunded means a captured payment was returned, typically
	// after cancellation.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending:  "PENDING",
		PaymentPaid:     "PAID",
		PaymentRefunded: "REFUNDED",
	}
}

// PaymentStatusFromString parses the persisted representation of a payment
// status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks the payment status is one of the defined values.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus", fmt.Errorf("%d is not a valid payment status", int(s)))
	}
	return nil
}

// String returns the persisted representation of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Pay transitions the payment status to Paid.
func (s PaymentStatus) Pay() (PaymentStatus, error) {
	if s != PaymentPending {
		return 0, errs.NewInvalidStateTransitionError(s.String(), PaymentPaid.String())
	}
	return PaymentPaid, nil
}

// Refund transitions the payment status to Refunded.
func (s PaymentStatus) Refund() (PaymentStatus, error) {
	if s != PaymentPaid {
		return 0, errs.NewInvalidStateTransitionError(s.String(), PaymentRefunded.String())
	}
	return PaymentRefunded, nil
}

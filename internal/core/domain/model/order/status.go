package order

import (
	"fmt"

	"quickcourier/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> InTransit ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no further transitions are
// allowed, and the order becomes immutable once either is reached.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status at checkout. Pending orders may
	// still have their extras recalculated or be cancelled.
	StatusPending

	// StatusConfirmed indicates the order has been confirmed for delivery.
	// Confirmed orders may still be cancelled.
	StatusConfirmed

	// StatusInTransit indicates the order has left the warehouse.
	StatusInTransit

	// StatusDelivered indicates successful delivery. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled and its stock
	// restored. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusConfirmed: "CONFIRMED",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "PENDING",
		StatusConfirmed: "CONFIRMED",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

// StatusFromString parses the persisted representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the persisted representation of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsCancellable reports whether an order in this status may still be
// cancelled or have its extras recalculated.
func (s Status) IsCancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Returns (0, InvalidStateTransitionError) for any other current status.
func (s Status) Confirm() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidStateTransitionError(s.String(), StatusConfirmed.String())
	}
	return StatusConfirmed, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - Confirmed -> InTransit
//
// Returns (0, InvalidStateTransitionError) for any other current status.
func (s Status) StartTransit() (Status, error) {
	if s != StatusConfirmed {
		return 0, errs.NewInvalidStateTransitionError(s.String(), StatusInTransit.String())
	}
	return StatusInTransit, nil
}

// Deliver transitions the status to Delivered, the successful terminal state.
//
// Valid transitions:
//   - InTransit -> Delivered
//
// Returns (0, InvalidStateTransitionError) for any other current status.
func (s Status) Deliver() (Status, error) {
	if s != StatusInTransit {
		return 0, errs.NewInvalidStateTransitionError(s.String(), StatusDelivered.String())
	}
	return StatusDelivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Confirmed -> Cancelled
//
// In-transit and terminal orders cannot be cancelled.
// Returns (0, InvalidStateTransitionError) for any other current status.
func (s Status) Cancel() (Status, error) {
	if !s.IsCancellable() {
		return 0, errs.NewInvalidStateTransitionError(s.String(), StatusCancelled.String())
	}
	return StatusCancelled, nil
}

package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	PendingDeposit ──> Confirmed ──> Processing ──> Shipped ──> Delivered
//	       │               │             │             │
//	       └───────────────┴─────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are final states; Delivered orders can never
// be cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// PendingDeposit is the initial status: the order waits for the 10%
	// deposit before anything else can happen.
	PendingDeposit

	// Confirmed indicates the deposit was paid and identity verified.
	Confirmed

	// Processing indicates the order is being prepared for shipment.
	Processing

	// Shipped indicates the order left the warehouse.
	Shipped

	// Delivered indicates the buyer received the order. Final state.
	Delivered

	// Cancelled indicates the order was cancelled. Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		PendingDeposit: "PendingDeposit",
		Confirmed:      "Confirmed",
		Processing:     "Processing",
		Shipped:        "Shipped",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingDeposit: "PendingDeposit",
		Confirmed:      "Confirmed",
		Processing:     "Processing",
		Shipped:        "Shipped",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Confirm transitions the status to Confirmed.
// Only PendingDeposit orders can be confirmed; the payment-status
// precondition is checked by the aggregate.
func (s Status) Confirm() (Status, error) {
	if s != PendingDeposit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Confirmed, nil
}

// AdvanceToProcessing transitions the status to Processing.
// Only Confirmed orders can advance; stages cannot be skipped.
func (s Status) AdvanceToProcessing() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to advance to processing", s.String()),
		)
	}

	return Processing, nil
}

// Ship transitions the status to Shipped.
// Only Processing orders can ship.
func (s Status) Ship() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}

	return Shipped, nil
}

// Deliver transitions the status to Delivered.
// Only Shipped orders can be delivered.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Every state except Delivered can cancel; the already-cancelled no-op is
// handled by the aggregate.
func (s Status) Cancel() (Status, error) {
	if s == Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

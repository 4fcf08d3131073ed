package payment

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment.
//
// State transitions:
//
//	Initiated ──> Pending ──┬──> Succeeded
//	    │                   └──> Failed
//	    └──> Succeeded | Failed
//
// Succeeded and Failed are terminal and mutually exclusive.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Initiated is the initial status recorded at creation.
	Initiated

	// Pending indicates the gateway accepted the payment and a final
	// outcome is awaited.
	Pending

	// Succeeded indicates the gateway collected the money. Terminal.
	Succeeded

	// Failed indicates the gateway rejected the payment. Terminal.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Initiated:     "Initiated",
		Pending:       "Pending",
		Succeeded:     "Succeeded",
		Failed:        "Failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Initiated: "Initiated",
		Pending:   "Pending",
		Succeeded: "Succeeded",
		Failed:    "Failed",
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

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Succeeded || s == Failed
}

package quoterequest

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a quote request.
//
// State transitions:
//
//	Pending ──┬──> Priced ──> Expired
//	          └──> Expired
//
// Expired is the only final state; Priced requests can still expire.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the request is waiting to be priced.
	Pending

	// Priced indicates a quote was issued against the request.
	Priced

	// Expired indicates the pricing window elapsed before a quote was issued.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Pending: "Pending",
		Priced:  "Priced",
		Expired: "Expired",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending: "Pending",
		Priced:  "Priced",
		Expired: "Expired",
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

// MarkPriced transitions the status to Priced.
// Only Pending requests can be priced.
func (s Status) MarkPriced() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to price", s.String()),
		)
	}

	return Priced, nil
}

// Expire transitions the status to Expired.
// Pending and Priced requests can expire; the caller handles the
// already-expired case as a no-op.
func (s Status) Expire() (Status, error) {
	if s != Pending && s != Priced {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to expire", s.String()),
		)
	}

	return Expired, nil
}

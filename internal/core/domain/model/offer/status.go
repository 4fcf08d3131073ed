package offer

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an offer.
//
// State transitions:
//
//	Draft ──> Active ──> Expired
//	  │          │          │
//	  └──────────┴──────────┴──> Archived
//
// Archived is the only final state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status: the offer is being assembled and its
	// items are still mutable.
	Draft

	// Active indicates the offer is published within its active window.
	Active

	// Expired indicates the active window elapsed.
	Expired

	// Archived indicates the offer was withdrawn. Final state.
	Archived
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Draft:    "Draft",
		Active:   "Active",
		Expired:  "Expired",
		Archived: "Archived",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:    "Draft",
		Active:   "Active",
		Expired:  "Expired",
		Archived: "Archived",
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

// Activate transitions the status to Active.
// Only Draft offers can be activated.
func (s Status) Activate() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to activate", s.String()),
		)
	}

	return Active, nil
}

// Expire transitions the status to Expired.
// Only Active offers can expire; the caller handles the already-expired
// case as a no-op.
func (s Status) Expire() (Status, error) {
	if s != Active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to expire", s.String()),
		)
	}

	return Expired, nil
}

// Archive transitions the status to Archived, allowed from every state;
// the caller handles the already-archived case as a no-op.
func (s Status) Archive() (Status, error) {
	return Archived, nil
}

package kernel

import (
	"encoding/json"
	"time"

	"marketplace/internal/pkg/errs"
)

// maxCartSnapshotLength bounds the serialized size of a cart snapshot.
const maxCartSnapshotLength = 50000

// CartSnapshot is an immutable value object capturing the serialized state of a
// cart at the moment a quote request is created. It is never mutated after
// construction; the negotiation works from this frozen copy while the original
// cart stays locked.
type CartSnapshot struct {
	jsonData   string
	itemsCount int
	takenAt    time.Time
}

// NewCartSnapshot validates and captures a cart snapshot.
// The payload must be well-formed JSON of at most 50000 characters, and the
// item count must not be negative.
func NewCartSnapshot(jsonData string, itemsCount int) (CartSnapshot, error) {
	if jsonData == "" {
		return CartSnapshot{}, errs.NewValueIsRequiredError("cart snapshot data")
	}
	if len(jsonData) > maxCartSnapshotLength {
		return CartSnapshot{}, errs.NewValueIsOutOfRangeError("cart snapshot length", len(jsonData), 1, maxCartSnapshotLength)
	}
	if !json.Valid([]byte(jsonData)) {
		return CartSnapshot{}, errs.NewValueIsInvalidError("cart snapshot data")
	}
	if itemsCount < 0 {
		return CartSnapshot{}, errs.NewValueIsInvalidError("cart snapshot items count")
	}

	return CartSnapshot{
		jsonData:   jsonData,
		itemsCount: itemsCount,
		takenAt:    time.Now().UTC(),
	}, nil
}

// RestoreCartSnapshot reconstructs a snapshot from persistence, preserving the
// original capture time.
func RestoreCartSnapshot(jsonData string, itemsCount int, takenAt time.Time) (CartSnapshot, error) {
	snapshot, err := NewCartSnapshot(jsonData, itemsCount)
	if err != nil {
		return CartSnapshot{}, err
	}
	snapshot.takenAt = takenAt
	return snapshot, nil
}

// JSONData returns the serialized cart state.
func (s CartSnapshot) JSONData() string {
	return s.jsonData
}

// ItemsCount returns the number of items captured in the snapshot.
func (s CartSnapshot) ItemsCount() int {
	return s.itemsCount
}

// TakenAt returns the UTC time the snapshot was captured.
func (s CartSnapshot) TakenAt() time.Time {
	return s.takenAt
}

// IsEmpty reports whether the snapshot captured no items.
func (s CartSnapshot) IsEmpty() bool {
	return s.itemsCount == 0
}

// IsEqual compares two snapshots by value.
func (s CartSnapshot) IsEqual(other CartSnapshot) bool {
	return s.jsonData == other.jsonData &&
		s.itemsCount == other.itemsCount &&
		s.takenAt.Equal(other.takenAt)
}

// String returns the serialized cart state.
func (s CartSnapshot) String() string {
	return s.jsonData
}

package specification

import (
	"time"

	"marketplace/internal/core/domain/model/offer"
)

// OfferActiveAt matches published offers whose window contains the given
// moment.
func OfferActiveAt(now time.Time) Predicate {
	status := FieldEq("status", int(offer.Active))
	windowOpen := FieldCompare(OpLe, "active_from", now)
	windowNotClosed := FieldCompare(OpGt, "active_to", now)
	return status.And(windowOpen).And(windowNotClosed)
}

// OfferTitleContains matches offers whose title contains the search term.
func OfferTitleContains(term string) Predicate {
	return FieldCompare(OpContains, "title", term)
}

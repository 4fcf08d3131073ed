// Package offer contains the Offer aggregate and its owned OfferItem records.
//
// An offer is a time-bounded promotional bundle of products assembled in
// Draft, published with Activate, and closed either by the clock (Expired)
// or by the back office (Archived).
package offer

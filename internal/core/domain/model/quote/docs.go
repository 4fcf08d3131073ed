// Package quote contains the Quote aggregate and its owned QuoteLine records.
//
// A quote is the back office's priced answer to a quote request. It has no
// status field: whether it is still mutable is entirely time-driven via
// IsExpired. Totals are derived state recomputed by every mutation.
package quote

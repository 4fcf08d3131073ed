// Package payment contains the Payment aggregate.
//
// A payment tracks one attempt to collect money against an order through an
// external gateway. Succeeded and Failed are terminal: they can be
// re-affirmed idempotently but never flipped into each other.
package payment

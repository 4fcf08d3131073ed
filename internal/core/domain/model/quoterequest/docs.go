// Package quoterequest contains the QuoteRequest aggregate.
//
// A quote request freezes the content of a customer's cart as an immutable
// snapshot and asks the back office to price it. Requests expire after a
// configurable window; expired requests can no longer be priced.
package quoterequest

// Package cart implements the shopping cart aggregate: a mutable
// pre-commitment container of product lines owned by a buyer. The cart is the
// entry point of the commerce lifecycle; locking it is the handoff gate into a
// quote request, after which it rejects all further mutation until unlocked.
package cart

// Package order contains the Order aggregate and its status state machine.
//
// An order is created from an accepted quote. It advances through a linear
// fulfillment pipeline gated by a 10% deposit, with cancellation available
// from every state except Delivered.
package order

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest unit of work that covers the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// QuoteRequestRepoFactory provides access to the quote request repository
	// within a transaction.
	QuoteRequestRepoFactory interface {
		QuoteRequestRepository() ports.QuoteRequestRepository
	}

	// QuoteRepoFactory provides access to the quote repository within a transaction.
	QuoteRepoFactory interface {
		QuoteRepository() ports.QuoteRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// OfferRepoFactory provides access to the offer repository within a transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// CartUoW manages transactions for cart-only operations.
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages transactions spanning the cart and the quote
	// request created from it.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		QuoteRequestRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// PricingUoW manages transactions spanning a quote request and the
	// quote issued against it.
	PricingUoW interface {
		TxManager
		QuoteRequestRepoFactory
		QuoteRepoFactory
	}

	// PricingUoWFactory creates new pricing unit of work instances.
	PricingUoWFactory interface {
		Create() PricingUoW
	}

	// QuoteRequestUoW manages transactions for quote-request-only operations.
	QuoteRequestUoW interface {
		TxManager
		QuoteRequestRepoFactory
	}

	// QuoteRequestUoWFactory creates new quote request unit of work instances.
	QuoteRequestUoWFactory interface {
		Create() QuoteRequestUoW
	}

	// OrderCreationUoW manages transactions spanning the quote being
	// accepted and the order created from it.
	OrderCreationUoW interface {
		TxManager
		QuoteRepoFactory
		OrderRepoFactory
	}

	// OrderCreationUoWFactory creates new order creation unit of work instances.
	OrderCreationUoWFactory interface {
		Create() OrderCreationUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DepositUoW manages transactions spanning an order and the payment
	// collected against it.
	DepositUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// DepositUoWFactory creates new deposit unit of work instances.
	DepositUoWFactory interface {
		Create() DepositUoW
	}

	// OfferUoW manages transactions for offer-only operations.
	OfferUoW interface {
		TxManager
		OfferRepoFactory
	}

	// OfferUoWFactory creates new offer unit of work instances.
	OfferUoWFactory interface {
		Create() OfferUoW
	}
)

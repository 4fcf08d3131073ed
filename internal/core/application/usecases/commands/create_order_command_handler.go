package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/quote"
)

// CreateOrderCommandHandler opens an order from an accepted quote.
type CreateOrderCommandHandler struct {
	uowFactory OrderCreationUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderCreationUoWFactory because the quote is read within the
// same transaction that persists the order.
func NewCreateOrderCommandHandler(uowFactory OrderCreationUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. An expired quote can no
// longer be accepted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quoteRepo := uow.QuoteRepository()
	orderRepo := uow.OrderRepository()

	accepted, err := quoteRepo.Get(ctx, command.QuoteID())
	if err != nil {
		return err
	}
	if accepted.IsExpired(time.Now().UTC()) {
		return quote.ErrQuoteExpired
	}

	placed, err := order.NewOrder(accepted.OwnerID(), accepted.ID(), accepted.Total())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

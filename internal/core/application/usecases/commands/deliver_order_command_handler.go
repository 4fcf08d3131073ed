package commands

import (
	"context"
)

// DeliverOrderCommandHandler handles the shipped-to-delivered transition.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for delivering orders.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deliver command.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, command DeliverOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	placed, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = placed.Deliver(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, placed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

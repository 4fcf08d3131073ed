package commands

import (
	"context"
)

// ConfirmOrderCommandHandler handles identity confirmation of orders.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command. The aggregate enforces both the
// status and the payment-status preconditions.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, command ConfirmOrderCommand) error {
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

	if err = placed.Confirm(command.NationalIDImageRef()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, placed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

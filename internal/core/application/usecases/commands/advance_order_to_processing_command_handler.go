package commands

import (
	"context"
)

// AdvanceOrderToProcessingCommandHandler handles the confirmed-to-processing
// transition.
type AdvanceOrderToProcessingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderToProcessingCommandHandler creates a handler for advancing
// orders into processing.
func NewAdvanceOrderToProcessingCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderToProcessingCommandHandler {
	return AdvanceOrderToProcessingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command.
func (h AdvanceOrderToProcessingCommandHandler) Handle(
	ctx context.Context,
	command AdvanceOrderToProcessingCommand,
) error {
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

	if err = placed.AdvanceToProcessing(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, placed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// UpdateCartNotesCommandHandler handles cart note replacement.
type UpdateCartNotesCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartNotesCommandHandler creates a handler for cart note updates.
func NewUpdateCartNotesCommandHandler(uowFactory CartUoWFactory) UpdateCartNotesCommandHandler {
	return UpdateCartNotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the notes update command.
func (h UpdateCartNotesCommandHandler) Handle(ctx context.Context, command UpdateCartNotesCommand) error {
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

	cartRepo := uow.CartRepository()

	ownerCart, err := cartRepo.GetByOwner(ctx, command.OwnerID())
	if err != nil {
		return err
	}

	if err = ownerCart.UpdateNotes(command.Notes()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, ownerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

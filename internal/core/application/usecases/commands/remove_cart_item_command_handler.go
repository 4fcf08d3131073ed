package commands

import (
	"context"
)

// RemoveCartItemCommandHandler handles product removal from a cart.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart item removal.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove command. Removing a product that is not in the
// cart succeeds without change.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, command RemoveCartItemCommand) error {
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

	if err = ownerCart.RemoveItem(command.ProductID()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, ownerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

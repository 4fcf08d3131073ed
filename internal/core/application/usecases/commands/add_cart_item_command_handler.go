package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/pkg/errs"
)

// AddCartItemCommandHandler handles the business logic for adding products
// to a cart. A customer without a cart gets one opened implicitly.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart item addition.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add command. Loads the owner's cart, creating a fresh
// one on first use, applies the addition and persists within a transaction.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, command AddCartItemCommand) error {
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
	isNew := errors.Is(err, errs.ErrObjectNotFound)
	if isNew {
		ownerCart, err = cart.NewCart(command.OwnerID())
	}
	if err != nil {
		return err
	}

	if err = ownerCart.AddItem(command.ProductID(), command.Quantity(), command.SelectedSpecs()); err != nil {
		return err
	}

	if isNew {
		err = cartRepo.Add(ctx, ownerCart)
	} else {
		err = cartRepo.Update(ctx, ownerCart)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

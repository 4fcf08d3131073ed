package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddCartItemCommandHandler_Handle_FirstItemOpensCart(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	cmd, err := commands.NewAddCartItemCommand(ownerID, kernel.NewUUID(), 2, kernel.JsonSpec{})
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetByOwner", mock.Anything, ownerID).Return(nil, errs.ErrObjectNotFound).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_ExistingCartIsUpdated(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	cmd, err := commands.NewAddCartItemCommand(ownerID, kernel.NewUUID(), 1, kernel.JsonSpec{})
	require.NoError(t, err)

	existing, err := cart.NewCart(ownerID)
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetByOwner", mock.Anything, ownerID).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 1, existing.TotalItems())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddCartItemCommand{} // not constructed properly
	factory := new(MockCartUoWFactory)
	h := commands.NewAddCartItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAddCartItemCommandHandler_Handle_GetByOwnerError(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	cmd, err := commands.NewAddCartItemCommand(ownerID, kernel.NewUUID(), 1, kernel.JsonSpec{})
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetByOwner", mock.Anything, ownerID).Return(nil, errors.New("storage down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterDepositCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	placed, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), decimal.RequireFromString("100.00"))
	require.NoError(t, err)

	cmd, err := commands.NewRegisterDepositCommand(
		placed.ID(), decimal.RequireFromString("10.00"), payment.CreditCard, "gw-12345",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockDepositUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		orderRepo.On("Get", mock.Anything, placed.ID()).Return(placed, nil).Once(),
		paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, placed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDepositUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterDepositCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, order.PaymentSucceeded, placed.PaymentStatus())
	require.Equal(t, order.PendingDeposit, placed.Status())

	added := paymentRepo.Calls[0].Arguments.Get(1).(*payment.Payment)
	require.Equal(t, placed.ID(), added.OrderID())
	require.True(t, added.IsSuccessful())
	require.Equal(t, "gw-12345", added.GatewayRef())

	orderRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterDepositCommandHandler_Handle_InsufficientAmountPersistsNothing(t *testing.T) {
	ctx := t.Context()

	placed, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), decimal.RequireFromString("100.00"))
	require.NoError(t, err)

	cmd, err := commands.NewRegisterDepositCommand(
		placed.ID(), decimal.RequireFromString("9.99"), payment.BankTransfer, "gw-12345",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockDepositUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PaymentRepository").Return(new(MockPaymentRepository)).Once(),
		orderRepo.On("Get", mock.Anything, placed.ID()).Return(placed, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDepositUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterDepositCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrDomainRuleViolation)
	require.Equal(t, order.PaymentPending, placed.PaymentStatus())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterDepositCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterDepositCommand{} // not constructed properly
	factory := new(MockDepositUoWFactory)
	h := commands.NewRegisterDepositCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

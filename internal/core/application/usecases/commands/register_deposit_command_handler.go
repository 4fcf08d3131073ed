package commands

import (
	"context"

	"marketplace/internal/core/domain/model/payment"
)

// RegisterDepositCommandHandler registers a deposit against an order: a
// payment aggregate records the gateway outcome and the order validates the
// amount against its fixed deposit — one transaction covers both, so an
// insufficient amount persists neither.
type RegisterDepositCommandHandler struct {
	uowFactory DepositUoWFactory
}

// NewRegisterDepositCommandHandler creates a handler for deposit
// registration. Requires a DepositUoWFactory because the command spans the
// order and payment aggregates.
func NewRegisterDepositCommandHandler(uowFactory DepositUoWFactory) RegisterDepositCommandHandler {
	return RegisterDepositCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deposit command. The order's RegisterDeposit rejects
// an insufficient amount with the shortfall before any state is written.
func (h RegisterDepositCommandHandler) Handle(ctx context.Context, command RegisterDepositCommand) error {
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
	paymentRepo := uow.PaymentRepository()

	placed, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = placed.RegisterDeposit(command.Amount()); err != nil {
		return err
	}

	deposit, err := payment.NewPayment(placed.ID(), command.Amount(), command.Method())
	if err != nil {
		return err
	}

	if err = deposit.MarkSucceeded(command.GatewayRef()); err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, deposit); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, placed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"time"
)

// ExpireOffersCommandHandler sweeps offers whose active window has closed
// into the expired status. All updates occur within a single transaction.
type ExpireOffersCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewExpireOffersCommandHandler creates a handler for the offer expiry sweep.
func NewExpireOffersCommandHandler(uowFactory OfferUoWFactory) ExpireOffersCommandHandler {
	return ExpireOffersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer expiry sweep command.
func (h *ExpireOffersCommandHandler) Handle(ctx context.Context, command ExpireOffersCommand) error {
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

	offerRepo := uow.OfferRepository()

	ended, err := offerRepo.GetAllActiveEndedBy(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	for _, current := range ended {
		if err = current.Expire(); err != nil {
			return err
		}

		if err = offerRepo.Update(ctx, current); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

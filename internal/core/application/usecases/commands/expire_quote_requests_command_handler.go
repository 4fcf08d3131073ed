package commands

import (
	"context"
	"time"
)

// ExpireQuoteRequestsCommandHandler sweeps overdue quote requests into the
// expired status. All updates occur within a single transaction.
type ExpireQuoteRequestsCommandHandler struct {
	uowFactory QuoteRequestUoWFactory
}

// NewExpireQuoteRequestsCommandHandler creates a handler for the quote
// request expiry sweep.
func NewExpireQuoteRequestsCommandHandler(uowFactory QuoteRequestUoWFactory) ExpireQuoteRequestsCommandHandler {
	return ExpireQuoteRequestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry sweep command.
func (h *ExpireQuoteRequestsCommandHandler) Handle(ctx context.Context, command ExpireQuoteRequestsCommand) error {
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

	requestRepo := uow.QuoteRequestRepository()

	overdue, err := requestRepo.GetAllPendingExpiredBy(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	for _, request := range overdue {
		if err = request.Expire(); err != nil {
			return err
		}

		if err = requestRepo.Update(ctx, request); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

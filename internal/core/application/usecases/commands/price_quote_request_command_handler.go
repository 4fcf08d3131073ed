package commands

import (
	"context"

	"marketplace/internal/core/domain/model/quote"
)

// PriceQuoteRequestCommandHandler turns a pending quote request into an
// issued quote: a quote is built from the priced lines, issued, and the
// request is marked priced — all within one transaction.
type PriceQuoteRequestCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewPriceQuoteRequestCommandHandler creates a handler for request pricing.
// Requires a PricingUoWFactory because the command spans the quote request
// and quote aggregates.
func NewPriceQuoteRequestCommandHandler(uowFactory PricingUoWFactory) PriceQuoteRequestCommandHandler {
	return PriceQuoteRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pricing command. MarkPriced guards against both a
// non-pending request and a logically expired one, so an expired request is
// rejected here even before the sweep formalizes it.
func (h PriceQuoteRequestCommandHandler) Handle(ctx context.Context, command PriceQuoteRequestCommand) error {
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
	quoteRepo := uow.QuoteRepository()

	request, err := requestRepo.Get(ctx, command.QuoteRequestID())
	if err != nil {
		return err
	}

	issued, err := quote.NewQuote(request.ID(), request.OwnerID(), command.ExpiresAt(), command.Notes())
	if err != nil {
		return err
	}

	for _, line := range command.Lines() {
		if err = issued.AddLine(line.ProductID, line.ProductSnapshot, line.Quantity, line.UnitPrice); err != nil {
			return err
		}
	}

	if err = issued.UpdateTaxAndShipping(command.Tax(), command.Shipping()); err != nil {
		return err
	}

	if err = issued.Issue(); err != nil {
		return err
	}

	if err = request.MarkPriced(issued.ID()); err != nil {
		return err
	}

	if err = quoteRepo.Add(ctx, issued); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"encoding/json"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/quoterequest"
)

// CreateQuoteRequestCommandHandler converts a customer's cart into a quote
// request: the cart is locked, its content frozen into a snapshot, and a
// pending request submitted — all within one transaction.
type CreateQuoteRequestCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateQuoteRequestCommandHandler creates a handler for quote request
// creation. Requires a CheckoutUoWFactory because the command spans the cart
// and quote request aggregates.
func NewCreateQuoteRequestCommandHandler(uowFactory CheckoutUoWFactory) CreateQuoteRequestCommandHandler {
	return CreateQuoteRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. Locking fails on an empty cart, which is
// what rejects empty requests before the snapshot is even taken.
func (h CreateQuoteRequestCommandHandler) Handle(ctx context.Context, command CreateQuoteRequestCommand) error {
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
	requestRepo := uow.QuoteRequestRepository()

	ownerCart, err := cartRepo.GetByOwner(ctx, command.OwnerID())
	if err != nil {
		return err
	}

	if err = ownerCart.Lock(); err != nil {
		return err
	}

	snapshot, err := snapshotCart(ownerCart)
	if err != nil {
		return err
	}

	request, err := quoterequest.NewQuoteRequest(command.OwnerID(), ownerCart.ID(), snapshot, command.Notes())
	if err != nil {
		return err
	}

	if err = requestRepo.Add(ctx, request); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, ownerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type snapshotLine struct {
	ProductID     string          `json:"productId"`
	Quantity      int             `json:"quantity"`
	SelectedSpecs json.RawMessage `json:"selectedSpecs,omitempty"`
}

// snapshotCart freezes the cart lines into the JSON payload carried by the
// quote request for the lifetime of the pricing process.
func snapshotCart(c *cart.Cart) (kernel.CartSnapshot, error) {
	items := c.Items()
	lines := make([]snapshotLine, 0, len(items))
	for _, item := range items {
		line := snapshotLine{
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
		}
		if !item.SelectedSpecs().IsZero() {
			line.SelectedSpecs = json.RawMessage(item.SelectedSpecs().String())
		}
		lines = append(lines, line)
	}

	payload, err := json.Marshal(struct {
		Items []snapshotLine `json:"items"`
	}{Items: lines})
	if err != nil {
		return kernel.CartSnapshot{}, err
	}

	return kernel.NewCartSnapshot(string(payload), c.TotalItems())
}

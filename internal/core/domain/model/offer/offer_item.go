package offer

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	minItemQuantity = 1
	maxItemQuantity = 10000
)

// OfferItem is a product bundled into an Offer with a promotional quantity.
type OfferItem struct {
	kernel.Entity

	offerID   kernel.UUID
	productID kernel.UUID
	quantity  int
}

func newOfferItem(offerID, productID kernel.UUID, quantity int) (*OfferItem, error) {
	if err := validateItemQuantity(quantity); err != nil {
		return nil, err
	}

	return &OfferItem{
		Entity:    kernel.NewEntity(),
		offerID:   offerID,
		productID: productID,
		quantity:  quantity,
	}, nil
}

// RestoreOfferItem reconstructs an offer item from persistence.
func RestoreOfferItem(
	id kernel.UUID,
	createdAt time.Time,
	updatedAt *time.Time,
	concurrencyToken string,
	offerID kernel.UUID,
	productID kernel.UUID,
	quantity int,
) (*OfferItem, error) {
	entity, err := kernel.RestoreEntity(id, createdAt, updatedAt, concurrencyToken)
	if err != nil {
		return nil, err
	}
	if err = offerID.Validate(); err != nil {
		return nil, err
	}
	if err = productID.Validate(); err != nil {
		return nil, err
	}
	if err = validateItemQuantity(quantity); err != nil {
		return nil, err
	}

	return &OfferItem{
		Entity:    entity,
		offerID:   offerID,
		productID: productID,
		quantity:  quantity,
	}, nil
}

// OfferID returns the owning offer.
func (i *OfferItem) OfferID() kernel.UUID {
	return i.offerID
}

// ProductID returns the bundled product.
func (i *OfferItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the promotional quantity.
func (i *OfferItem) Quantity() int {
	return i.quantity
}

func (i *OfferItem) updateQuantity(quantity int) error {
	if err := validateItemQuantity(quantity); err != nil {
		return err
	}

	i.quantity = quantity
	i.MarkModified()
	return nil
}

func validateItemQuantity(quantity int) error {
	if quantity < minItemQuantity || quantity > maxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, minItemQuantity, maxItemQuantity)
	}
	return nil
}

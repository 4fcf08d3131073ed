package cart

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// CartItem is a child record owned exclusively by its Cart. It is never shared
// between carts and is only mutated through the owning aggregate, which keeps
// the per-product quantity bound enforced in one place.
type CartItem struct {
	kernel.Entity

	cartID        kernel.UUID
	productID     kernel.UUID
	quantity      int
	selectedSpecs kernel.JsonSpec
	addedAt       time.Time
}

// newCartItem creates an item for the given product. Quantity bounds are
// validated by the owning cart before this is called.
func newCartItem(cartID, productID kernel.UUID, quantity int, selectedSpecs kernel.JsonSpec) *CartItem {
	return &CartItem{
		Entity:        kernel.NewEntity(),
		cartID:        cartID,
		productID:     productID,
		quantity:      quantity,
		selectedSpecs: selectedSpecs,
		addedAt:       time.Now().UTC(),
	}
}

// RestoreCartItem reconstructs a cart item from persistence.
func RestoreCartItem(
	id kernel.UUID,
	createdAt time.Time,
	updatedAt *time.Time,
	concurrencyToken string,
	cartID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	selectedSpecs kernel.JsonSpec,
	addedAt time.Time,
) (*CartItem, error) {
	entity, err := kernel.RestoreEntity(id, createdAt, updatedAt, concurrencyToken)
	if err != nil {
		return nil, err
	}
	if err = cartID.Validate(); err != nil {
		return nil, err
	}
	if err = productID.Validate(); err != nil {
		return nil, err
	}
	if quantity < 1 || quantity > maxQuantityPerProduct {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantityPerProduct)
	}

	return &CartItem{
		Entity:        entity,
		cartID:        cartID,
		productID:     productID,
		quantity:      quantity,
		selectedSpecs: selectedSpecs,
		addedAt:       addedAt,
	}, nil
}

// CartID returns the identifier of the owning cart.
func (i *CartItem) CartID() kernel.UUID {
	return i.cartID
}

// ProductID returns the product this line refers to.
func (i *CartItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the current quantity, always within [1, 1000].
func (i *CartItem) Quantity() int {
	return i.quantity
}

// SelectedSpecs returns the buyer's chosen product specification.
// The zero JsonSpec means no specification was selected.
func (i *CartItem) SelectedSpecs() kernel.JsonSpec {
	return i.selectedSpecs
}

// AddedAt returns the UTC time the product first entered the cart.
func (i *CartItem) AddedAt() time.Time {
	return i.addedAt
}

// updateQuantity replaces the quantity after validating bounds.
func (i *CartItem) updateQuantity(quantity int) error {
	if quantity < 1 || quantity > maxQuantityPerProduct {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantityPerProduct)
	}

	i.quantity = quantity
	i.MarkModified()
	return nil
}

// updateSelectedSpecs replaces the selected specification.
func (i *CartItem) updateSelectedSpecs(selectedSpecs kernel.JsonSpec) {
	i.selectedSpecs = selectedSpecs
	i.MarkModified()
}

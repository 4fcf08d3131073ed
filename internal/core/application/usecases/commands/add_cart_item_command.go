package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddCartItemCommand represents a request to put a product into a customer's
// cart, merging with an existing line if the product is already there.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	ownerID       kernel.UUID
	productID     kernel.UUID
	quantity      int
	selectedSpecs kernel.JsonSpec

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a product to the owner's
// cart. Validates identifiers and requires a positive quantity; the
// per-product cap is enforced by the aggregate.
func NewAddCartItemCommand(
	ownerID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	selectedSpecs kernel.JsonSpec,
) (AddCartItemCommand, error) {
	command := AddCartItemCommand{
		selectedSpecs: selectedSpecs,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setProductID(productID),
		command.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// OwnerID returns the cart owner.
func (c AddCartItemCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// ProductID returns the product to add.
func (c AddCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the requested quantity.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

// SelectedSpecs returns the chosen product options, possibly zero.
func (c AddCartItemCommand) SelectedSpecs() kernel.JsonSpec {
	return c.selectedSpecs
}

func (c *AddCartItemCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *AddCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

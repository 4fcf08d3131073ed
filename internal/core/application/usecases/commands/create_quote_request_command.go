package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCreateQuoteRequestCommandIsNotConstructed = errors.New(
	"CreateQuoteRequestCommand must be created via NewCreateQuoteRequestCommand constructor",
)

// CreateQuoteRequestCommand represents a customer's request to have their
// cart priced. The cart is locked and snapshotted as part of handling.
type CreateQuoteRequestCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	notes   string

	guard guard.ConstructorGuard
}

// NewCreateQuoteRequestCommand creates a command to convert the owner's cart
// into a quote request.
func NewCreateQuoteRequestCommand(ownerID kernel.UUID, notes string) (CreateQuoteRequestCommand, error) {
	command := CreateQuoteRequestCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOwnerID(ownerID); err != nil {
		return CreateQuoteRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateQuoteRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateQuoteRequestCommandIsNotConstructed)
}

// OwnerID returns the customer requesting pricing.
func (c CreateQuoteRequestCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Notes returns the customer notes attached to the request.
func (c CreateQuoteRequestCommand) Notes() string {
	return c.notes
}

func (c *CreateQuoteRequestCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

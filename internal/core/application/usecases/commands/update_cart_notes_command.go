package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateCartNotesCommandIsNotConstructed = errors.New(
	"UpdateCartNotesCommand must be created via NewUpdateCartNotesCommand constructor",
)

// UpdateCartNotesCommand represents a request to replace the free-text notes
// on a customer's cart.
type UpdateCartNotesCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	notes   string

	guard guard.ConstructorGuard
}

// NewUpdateCartNotesCommand creates a command to replace the cart notes.
// The length cap is enforced by the aggregate.
func NewUpdateCartNotesCommand(ownerID kernel.UUID, notes string) (UpdateCartNotesCommand, error) {
	command := UpdateCartNotesCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOwnerID(ownerID); err != nil {
		return UpdateCartNotesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartNotesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartNotesCommandIsNotConstructed)
}

// OwnerID returns the cart owner.
func (c UpdateCartNotesCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Notes returns the replacement notes text.
func (c UpdateCartNotesCommand) Notes() string {
	return c.notes
}

func (c *UpdateCartNotesCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAdvanceOrderToProcessingCommandIsNotConstructed = errors.New(
	"AdvanceOrderToProcessingCommand must be created via NewAdvanceOrderToProcessingCommand constructor",
)

// AdvanceOrderToProcessingCommand represents the start of preparation for a
// confirmed order.
type AdvanceOrderToProcessingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderToProcessingCommand creates a command to advance a confirmed
// order into processing.
func NewAdvanceOrderToProcessingCommand(orderID kernel.UUID) (AdvanceOrderToProcessingCommand, error) {
	command := AdvanceOrderToProcessingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return AdvanceOrderToProcessingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderToProcessingCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderToProcessingCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderToProcessingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AdvanceOrderToProcessingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
	ErrNationalIDImageRefIsRequired = errors.New("national ID image reference is required")
)

// ConfirmOrderCommand represents identity verification of a deposit-paid
// order.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	nationalIDImageRef string

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm an order with the
// buyer's identity document reference.
func NewConfirmOrderCommand(orderID kernel.UUID, nationalIDImageRef string) (ConfirmOrderCommand, error) {
	command := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setNationalIDImageRef(nationalIDImageRef),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NationalIDImageRef returns the identity document reference.
func (c ConfirmOrderCommand) NationalIDImageRef() string {
	return c.nationalIDImageRef
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderCommand) setNationalIDImageRef(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ErrNationalIDImageRefIsRequired
	}

	c.nationalIDImageRef = ref
	return nil
}

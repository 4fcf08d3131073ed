package commands

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRegisterDepositCommandIsNotConstructed = errors.New(
		"RegisterDepositCommand must be created via NewRegisterDepositCommand constructor",
	)
	ErrAmountIsInvalid      = errors.New("amount must be greater than 0")
	ErrGatewayRefIsRequired = errors.New("gateway reference is required")
)

// RegisterDepositCommand represents a confirmed gateway payment being
// registered as the deposit of an order.
type RegisterDepositCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	amount     decimal.Decimal
	method     payment.Method
	gatewayRef string

	guard guard.ConstructorGuard
}

// NewRegisterDepositCommand creates a command to register a deposit payment
// against the given order.
func NewRegisterDepositCommand(
	orderID kernel.UUID,
	amount decimal.Decimal,
	method payment.Method,
	gatewayRef string,
) (RegisterDepositCommand, error) {
	command := RegisterDepositCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAmount(amount),
		command.setMethod(method),
		command.setGatewayRef(gatewayRef),
	); err != nil {
		return RegisterDepositCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDepositCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDepositCommandIsNotConstructed)
}

// OrderID returns the order the deposit pays for.
func (c RegisterDepositCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the paid amount.
func (c RegisterDepositCommand) Amount() decimal.Decimal {
	return c.amount
}

// Method returns the payment instrument used.
func (c RegisterDepositCommand) Method() payment.Method {
	return c.method
}

// GatewayRef returns the gateway's reference for the collection.
func (c RegisterDepositCommand) GatewayRef() string {
	return c.gatewayRef
}

func (c *RegisterDepositCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RegisterDepositCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *RegisterDepositCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *RegisterDepositCommand) setGatewayRef(gatewayRef string) error {
	gatewayRef = strings.TrimSpace(gatewayRef)
	if gatewayRef == "" {
		return ErrGatewayRefIsRequired
	}

	c.gatewayRef = gatewayRef
	return nil
}

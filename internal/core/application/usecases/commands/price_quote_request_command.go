package commands

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPriceQuoteRequestCommandIsNotConstructed = errors.New(
		"PriceQuoteRequestCommand must be created via NewPriceQuoteRequestCommand constructor",
	)
	ErrPricedLinesAreRequired = errors.New("at least one priced line is required")
)

// PricedLine is one priced product supplied by the back office when
// answering a quote request.
type PricedLine struct {
	ProductID       kernel.UUID
	ProductSnapshot string
	Quantity        int
	UnitPrice       decimal.Decimal
}

// PriceQuoteRequestCommand represents the back office pricing a pending
// quote request into an issued quote.
type PriceQuoteRequestCommand struct { //nolint:recvcheck //using for validation
	quoteRequestID kernel.UUID
	lines          []PricedLine
	tax            decimal.Decimal
	shipping       decimal.Decimal
	expiresAt      time.Time
	notes          string

	guard guard.ConstructorGuard
}

// NewPriceQuoteRequestCommand creates a command to price a quote request.
// A zero expiresAt selects the quote's default validity window. Line-level
// bounds are enforced by the quote aggregate.
func NewPriceQuoteRequestCommand(
	quoteRequestID kernel.UUID,
	lines []PricedLine,
	tax decimal.Decimal,
	shipping decimal.Decimal,
	expiresAt time.Time,
	notes string,
) (PriceQuoteRequestCommand, error) {
	command := PriceQuoteRequestCommand{
		tax:       tax,
		shipping:  shipping,
		expiresAt: expiresAt,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setQuoteRequestID(quoteRequestID),
		command.setLines(lines),
	); err != nil {
		return PriceQuoteRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PriceQuoteRequestCommand) Validate() error {
	return c.guard.Validate(ErrPriceQuoteRequestCommandIsNotConstructed)
}

// QuoteRequestID returns the request being priced.
func (c PriceQuoteRequestCommand) QuoteRequestID() kernel.UUID {
	return c.quoteRequestID
}

// Lines returns the priced lines.
func (c PriceQuoteRequestCommand) Lines() []PricedLine {
	lines := make([]PricedLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Tax returns the tax charge.
func (c PriceQuoteRequestCommand) Tax() decimal.Decimal {
	return c.tax
}

// Shipping returns the shipping charge.
func (c PriceQuoteRequestCommand) Shipping() decimal.Decimal {
	return c.shipping
}

// ExpiresAt returns the explicit quote expiry, zero for the default window.
func (c PriceQuoteRequestCommand) ExpiresAt() time.Time {
	return c.expiresAt
}

// Notes returns the back-office notes for the quote.
func (c PriceQuoteRequestCommand) Notes() string {
	return c.notes
}

func (c *PriceQuoteRequestCommand) setQuoteRequestID(quoteRequestID kernel.UUID) error {
	if err := quoteRequestID.Validate(); err != nil {
		return err
	}

	c.quoteRequestID = quoteRequestID
	return nil
}

func (c *PriceQuoteRequestCommand) setLines(lines []PricedLine) error {
	if len(lines) == 0 {
		return ErrPricedLinesAreRequired
	}

	c.lines = make([]PricedLine, len(lines))
	copy(c.lines, lines)
	return nil
}

package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrExpireQuoteRequestsCommandIsNotConstructed = errors.New(
	"ExpireQuoteRequestsCommand must be created via NewExpireQuoteRequestsCommand constructor",
)

// ExpireQuoteRequestsCommand triggers the sweep that settles the status of
// quote requests whose expiry window has passed. The clock comparison is
// authoritative for business rules; the sweep only brings the stored status
// in line with it.
//
// Example:
//
//	cmd := NewExpireQuoteRequestsCommand()
//	handler := NewExpireQuoteRequestsCommandHandler(uowFactory)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("quote request expiry sweep failed: %v", err)
//	}
type ExpireQuoteRequestsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireQuoteRequestsCommand creates a parameterless command that sweeps
// all overdue quote requests.
func NewExpireQuoteRequestsCommand() ExpireQuoteRequestsCommand {
	command := ExpireQuoteRequestsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *ExpireQuoteRequestsCommand) Validate() error {
	return c.guard.Validate(ErrExpireQuoteRequestsCommandIsNotConstructed)
}

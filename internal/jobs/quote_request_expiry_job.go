package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// QuoteRequestExpiryJob manages the scheduled expiry of pending quote requests.
// Runs every minute to move overdue requests into the expired state.
type QuoteRequestExpiryJob struct {
	handler commands.ExpireQuoteRequestsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQuoteRequestExpiryJob creates a new job for expiring quote requests.
// Uses ExpireQuoteRequestsCommandHandler to sweep overdue requests every minute.
func NewQuoteRequestExpiryJob(handler commands.ExpireQuoteRequestsCommandHandler, logger *slog.Logger) *QuoteRequestExpiryJob {
	return &QuoteRequestExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "quote_request_expiry_job"),
	}
}

// Start begins the quote request expiry job to run every minute.
func (j *QuoteRequestExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireQuoteRequestsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Quote request expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote request expiry job started (running every minute)")
	return nil
}

// Stop stops the quote request expiry job.
func (j *QuoteRequestExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quote request expiry job stopped")
}

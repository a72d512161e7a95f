package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"quickcourier/internal/core/application/usecases/commands"
	"quickcourier/internal/core/application/usecases/queries"
	"quickcourier/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// OrderExpiryJob cancels orders that stayed pending past the configured
// maximum age. Cancellation goes through the regular command handler so the
// reserved stock is restored.
type OrderExpiryJob struct {
	staleOrdersHandler queries.GetStalePendingOrdersQueryHandler
	cancelHandler      commands.CancelOrderCommandHandler
	maxPendingAge      time.Duration
	cron               *cron.Cron
	logger             *slog.Logger
}

// NewOrderExpiryJob creates a job that expires stale pending orders.
// maxPendingAge is how long an order may stay pending before it is cancelled.
func NewOrderExpiryJob(
	staleOrdersHandler queries.GetStalePendingOrdersQueryHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	maxPendingAge time.Duration,
	logger *slog.Logger,
) *OrderExpiryJob {
	return &OrderExpiryJob{
		staleOrdersHandler: staleOrdersHandler,
		cancelHandler:      cancelHandler,
		maxPendingAge:      maxPendingAge,
		cron:               cron.New(),
		logger:             logger.With("component", "order_expiry_job"),
	}
}

// Start begins the expiry job, running once per minute.
func (j *OrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Order expiry job started (running every minute)",
		"max_pending_age", j.maxPendingAge.String())
	return nil
}

// Stop stops the expiry job.
func (j *OrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}

func (j *OrderExpiryJob) run() {
	ctx := context.Background()
	cutoff := time.Now().Add(-j.maxPendingAge)

	query, err := queries.NewGetStalePendingOrdersQuery(cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build stale orders query", "error", err)
		return
	}

	stale, err := j.staleOrdersHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load stale pending orders", "error", err)
		return
	}

	for _, candidate := range stale {
		// Cancellation runs on behalf of the order's own user so the
		// ownership check in the handler passes.
		cmd, cmdErr := commands.NewCancelOrderCommand(candidate.ID, candidate.UserID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build cancel command",
				"order_id", candidate.ID.String(), "error", cmdErr)
			continue
		}

		if cancelErr := j.cancelHandler.Handle(ctx, cmd); cancelErr != nil {
			// The order may have been confirmed or cancelled between the
			// query and the command. Both are fine.
			if errors.Is(cancelErr, errs.ErrInvalidStateTransition) ||
				errors.Is(cancelErr, errs.ErrObjectNotFound) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to expire pending order",
				"order_id", candidate.ID.String(), "error", cancelErr)
			continue
		}

		j.logger.InfoContext(ctx, "Expired stale pending order",
			"order_id", candidate.ID.String(),
			"number", candidate.Number,
			"created_at", candidate.CreatedAt)
	}
}

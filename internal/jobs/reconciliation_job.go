package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// ReconciliationJob periodically replays production outcomes that the order
// side has not absorbed yet. Together with the same-status no-op rule on
// order transitions this gives at-least-once propagation that converges:
// a missed notification is picked up on the next run, a replayed one is
// absorbed without a second history entry.
type ReconciliationJob struct {
	backlogHandler queries.GetUnreconciledWorkOrdersQueryHandler
	outcomeHandler commands.ProductionOutcomeCommandHandler
	cron           *cron.Cron
	spec           string
	logger         *slog.Logger
}

// NewReconciliationJob creates a job that drains the reconciliation backlog
// on the given cron spec.
func NewReconciliationJob(
	backlogHandler queries.GetUnreconciledWorkOrdersQueryHandler,
	outcomeHandler commands.ProductionOutcomeCommandHandler,
	spec string,
	logger *slog.Logger,
) *ReconciliationJob {
	return &ReconciliationJob{
		backlogHandler: backlogHandler,
		outcomeHandler: outcomeHandler,
		cron:           cron.New(cron.WithSeconds()),
		spec:           spec,
		logger:         logger.With("component", "reconciliation_job"),
	}
}

// Start schedules the job.
func (j *ReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation job started", "spec", j.spec)
	return nil
}

// Stop stops the job.
func (j *ReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation job stopped")
}

func (j *ReconciliationJob) run() {
	ctx := context.Background()

	backlog, err := j.backlogHandler.Handle(ctx, queries.NewGetUnreconciledWorkOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load reconciliation backlog", "error", err)
		return
	}

	for _, entry := range backlog {
		cmd, cmdErr := commands.NewProductionOutcomeCommand(entry.WorkOrderID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build production outcome command",
				"workOrderID", entry.WorkOrderID, "error", cmdErr)
			continue
		}

		handleErr := j.outcomeHandler.Handle(ctx, cmd)
		switch {
		case handleErr == nil:
			j.logger.InfoContext(ctx, "Reconciled work order outcome",
				"workOrderID", entry.WorkOrderID, "orderID", entry.OrderID, "state", entry.State)
		case errors.Is(handleErr, errs.ErrConflict):
			// The two sides disagree (for example a cancelled order whose
			// work order finished). Retrying will not fix it; an operator
			// has to decide. Keep it loud on every run.
			j.logger.ErrorContext(ctx, "Work order outcome conflicts with order state",
				"workOrderID", entry.WorkOrderID, "orderID", entry.OrderID,
				"state", entry.State, "orderStatus", entry.OrderStatus, "error", handleErr)
		default:
			j.logger.ErrorContext(ctx, "Failed to reconcile work order outcome",
				"workOrderID", entry.WorkOrderID, "error", handleErr)
		}
	}
}

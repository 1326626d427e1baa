package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs the status sweep once a minute.
const DefaultSweepSchedule = "@every 1m"

type orderStatusSweeper interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrderStatusesCommand) (commands.SweepReport, error)
}

// SweepRecorder receives the outcome of each run. *metrics.Metrics implements it.
type SweepRecorder interface {
	RecordSweep(duration time.Duration, advanced, unchanged, failedOrders int, failed bool)
}

// OrderStatusJob runs the order status sweep on a cron schedule.
// A run that is still in progress when the next tick fires causes that tick to
// be skipped, and a panic inside a run is logged instead of killing the process.
type OrderStatusJob struct {
	handler  orderStatusSweeper
	recorder SweepRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

var _ cron.Job = (*OrderStatusJob)(nil)

// NewOrderStatusJob creates the sweep job. An empty schedule means DefaultSweepSchedule.
func NewOrderStatusJob(
	handler orderStatusSweeper,
	recorder SweepRecorder,
	schedule string,
	logger *slog.Logger,
) *OrderStatusJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	logger = logger.With("component", "order_status_job")
	cl := cronLogger{logger: logger}

	return &OrderStatusJob{
		handler:  handler,
		recorder: recorder,
		schedule: schedule,
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
	}
}

// Run executes one sweep. It is called by the scheduler and may be called
// directly.
func (j *OrderStatusJob) Run() {
	ctx := context.Background()
	start := time.Now()

	report, err := j.handler.Handle(ctx, commands.NewAdvanceOrderStatusesCommand())
	duration := time.Since(start)

	if err != nil {
		j.logger.ErrorContext(ctx, "Order status sweep failed", "error", err)
		j.recorder.RecordSweep(duration, 0, 0, 0, true)
		return
	}

	unchanged := report.Examined - report.Advanced - report.Failed
	j.recorder.RecordSweep(duration, report.Advanced, unchanged, report.Failed, false)
}

// Start schedules the job.
func (j *OrderStatusJob) Start() error {
	if _, err := j.cron.AddJob(j.schedule, j); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status job started", "schedule", j.schedule)
	return nil
}

// Stop unschedules the job and waits for a running sweep to finish.
func (j *OrderStatusJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order status job stopped")
}

package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/clock"
)

// SweepReport summarizes one pass of the status sweep.
type SweepReport struct {
	Examined int
	Advanced int
	Failed   int
}

// AdvanceOrderStatusesCommandHandler runs the time-driven status sweep.
//
// Orders are listed once, then each is re-read, evaluated and written back in
// its own unit of work, so one failing order never blocks the others. All
// orders in a pass are evaluated against the same instant.
//
// Example:
//
//	handler := NewAdvanceOrderStatusesCommandHandler(uowFactory, services.NewDefaultStatusAdvancer(),
//	    clock.NewSystem(), publisher, logger)
//	report, err := handler.Handle(ctx, NewAdvanceOrderStatusesCommand())
type AdvanceOrderStatusesCommandHandler struct {
	uowFactory OrderUoWFactory
	advancer   services.StatusAdvancer
	clock      clock.Clock
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewAdvanceOrderStatusesCommandHandler(
	uowFactory OrderUoWFactory,
	advancer services.StatusAdvancer,
	clk clock.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AdvanceOrderStatusesCommandHandler {
	return AdvanceOrderStatusesCommandHandler{
		uowFactory: uowFactory,
		advancer:   advancer,
		clock:      clk,
		publisher:  publisher,
		logger:     logger.With("component", "order-status-sweep"),
	}
}

// Handle returns an error only when the orders cannot be listed. Per-order
// failures are logged and counted in the report.
func (h *AdvanceOrderStatusesCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderStatusesCommand,
) (SweepReport, error) {
	if err := cmd.Validate(); err != nil {
		return SweepReport{}, err
	}

	ids, err := h.uowFactory.Create().OrderRepository().GetAllIDs(ctx)
	if err != nil {
		return SweepReport{}, err
	}

	now := h.clock.Now()
	report := SweepReport{Examined: len(ids)}

	for _, id := range ids {
		events, advanceErr := h.advanceOne(ctx, id, now)
		if advanceErr != nil {
			report.Failed++
			h.logger.ErrorContext(ctx, "failed to advance order status",
				"order_id", id.String(),
				"error", advanceErr,
			)
			continue
		}
		if len(events) > 0 {
			report.Advanced++
		}
		h.publish(ctx, events)
	}

	h.logger.InfoContext(ctx, "order status sweep finished",
		"examined", report.Examined,
		"advanced", report.Advanced,
		"failed", report.Failed,
	)

	return report, nil
}

// advanceOne returns the events of a committed transition, or none when the
// order was not due.
func (h *AdvanceOrderStatusesCommandHandler) advanceOne(
	ctx context.Context,
	id kernel.UUID,
	now time.Time,
) ([]order.StatusChangedEvent, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	current, err := ordersRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	advanced, err := h.advancer.Advance(current, now)
	if err != nil || !advanced {
		return nil, err
	}

	if err = ordersRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events := current.DomainEvents()
	current.ClearDomainEvents()
	return events, nil
}

func (h *AdvanceOrderStatusesCommandHandler) publish(ctx context.Context, events []order.StatusChangedEvent) {
	for _, event := range events {
		if err := h.publisher.Publish(ctx, event); err != nil {
			h.logger.WarnContext(ctx, "failed to publish order status event",
				"order_id", event.OrderID.String(),
				"error", err,
			)
		}
	}
}

package events

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// TransitionRecorder counts transitions. *metrics.Metrics implements it.
type TransitionRecorder interface {
	RecordTransition(from, to string)
}

// MetricsPublisher turns events into the transitions counter.
type MetricsPublisher struct {
	recorder TransitionRecorder
}

func NewMetricsPublisher(recorder TransitionRecorder) *MetricsPublisher {
	return &MetricsPublisher{recorder: recorder}
}

func (p *MetricsPublisher) Publish(_ context.Context, event order.StatusChangedEvent) error {
	p.recorder.RecordTransition(event.From.String(), event.To.String())
	return nil
}

package order

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// StatusChangedEvent records one lifecycle transition.
type StatusChangedEvent struct {
	OrderID    kernel.UUID
	From       Status
	To         Status
	OccurredAt time.Time
}

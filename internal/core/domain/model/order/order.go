package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of a customer order.
//
// Invariants:
//   - items is non-empty and holds MenuItem snapshots taken at placement
//   - status moves forward only, one step per transition
//   - updatedAt is the time of the last transition and never precedes createdAt
//
// Order is not safe for concurrent use; stores hand out copies (see Clone) and
// serialize writes through their unit of work.
type Order struct {
	id        kernel.UUID
	items     []menu.MenuItem
	status    Status
	createdAt time.Time
	updatedAt time.Time

	events []StatusChangedEvent

	isConstructed bool
}

// NewOrder places an order in Preparing status with createdAt = updatedAt = now.
// items are copied, so later changes to the caller's slice do not leak in.
//
//	burger, _ := catalog.Get(ctx, burgerID)
//	o, err := order.NewOrder(kernel.NewUUID(), []menu.MenuItem{burger}, clock.Now())
func NewOrder(id kernel.UUID, items []menu.MenuItem, now time.Time) (*Order, error) {
	return RestoreOrder(id, items, Preparing, now, now)
}

// RestoreOrder rebuilds an order read from storage.
//
// Parameters:
//   - id: the stored order id
//   - items: the item snapshots in placement order, at least one
//   - status: any valid status, including Delivered
//   - createdAt, updatedAt: updatedAt must not precede createdAt
//
// Returns:
//   - *Order with no pending domain events
//   - error joining every invalid field
func RestoreOrder(
	id kernel.UUID,
	items []menu.MenuItem,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setStatus(status),
		o.setTimes(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier assigned at placement.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Items returns a copy of the item snapshots in placement order.
func (o *Order) Items() []menu.MenuItem {
	items := make([]menu.MenuItem, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt is the placement time, in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt is the time of the last status transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Elapsed returns how long the order has been in its current status.
func (o *Order) Elapsed(now time.Time) time.Duration {
	return now.Sub(o.updatedAt)
}

// Dispatch moves a Preparing order out for delivery and records a
// StatusChangedEvent.
//
// Parameters:
//   - now: the transition time; becomes UpdatedAt
//
// Returns:
//   - nil on success
//   - ErrOrderIsNotConstructed for a zero Order
//   - validation error if the order is not Preparing or now precedes UpdatedAt
//
// Example:
//
//	if o.Elapsed(now) >= preparingDuration {
//	    if err := o.Dispatch(now); err != nil {
//	        return err
//	    }
//	}
func (o *Order) Dispatch(now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	next, err := o.status.Dispatch()
	if err != nil {
		return err
	}
	return o.transition(next, now)
}

// Deliver marks an OutForDelivery order as delivered and records a
// StatusChangedEvent. Delivered is terminal.
//
// Parameters:
//   - now: the transition time; becomes UpdatedAt
//
// Returns:
//   - nil on success
//   - ErrOrderIsNotConstructed for a zero Order
//   - validation error if the order is not OutForDelivery or now precedes UpdatedAt
//
// Example:
//
//	err := o.Deliver(now)
//	if errs.IsValidation(err) {
//	    // already delivered or still preparing
//	}
func (o *Order) Deliver(now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	next, err := o.status.Deliver()
	if err != nil {
		return err
	}
	return o.transition(next, now)
}

// DomainEvents returns the transitions recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []StatusChangedEvent {
	events := make([]StatusChangedEvent, len(o.events))
	copy(events, o.events)
	return events
}

// ClearDomainEvents drops the recorded transitions, usually once they have
// been published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

// Clone returns a deep copy, including pending domain events.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.items = o.Items()
	c.events = o.DomainEvents()
	return &c
}

func (o *Order) transition(next Status, now time.Time) error {
	now = normalizeTime(now)
	if now.Before(o.updatedAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"transition time",
			fmt.Errorf("%s is before last update %s", now.Format(time.RFC3339Nano), o.updatedAt.Format(time.RFC3339Nano)),
		)
	}

	o.events = append(o.events, StatusChangedEvent{
		OrderID:    o.id,
		From:       o.status,
		To:         next,
		OccurredAt: now,
	})
	o.status = next
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []menu.MenuItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}
	o.items = make([]menu.MenuItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTimes(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"updatedAt",
			fmt.Errorf("%s is before createdAt", updatedAt.Format(time.RFC3339Nano)),
		)
	}
	o.createdAt = normalizeTime(createdAt)
	o.updatedAt = normalizeTime(updatedAt)
	return nil
}

// normalizeTime keeps timestamps in UTC at microsecond precision, the
// resolution PostgreSQL stores, so restored orders compare equal.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

package services

import (
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

const (
	// DefaultPreparingDuration is how long an order stays in Preparing.
	DefaultPreparingDuration = 2 * time.Minute

	// DefaultDeliveryDuration is how long an order stays OutForDelivery.
	DefaultDeliveryDuration = 5 * time.Minute
)

// StatusAdvancer decides when an order moves to its next status.
//
// Rules, evaluated against the time since the order's last transition:
//   - Preparing and elapsed >= preparing duration: OutForDelivery
//   - OutForDelivery and elapsed >= delivery duration: Delivered
//   - Delivered: never changes
//
// Each call performs at most one transition. Because elapsed time restarts at
// every transition, an order that was evaluated late does not skip a stage.
type StatusAdvancer struct {
	preparingDuration time.Duration
	deliveryDuration  time.Duration
}

// NewStatusAdvancer creates an advancer with the given stage durations.
func NewStatusAdvancer(preparingDuration, deliveryDuration time.Duration) (StatusAdvancer, error) {
	if preparingDuration <= 0 {
		return StatusAdvancer{}, errs.NewValueIsInvalidErrorWithCause(
			"preparing duration", fmt.Errorf("%s is not greater than 0", preparingDuration),
		)
	}
	if deliveryDuration <= 0 {
		return StatusAdvancer{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery duration", fmt.Errorf("%s is not greater than 0", deliveryDuration),
		)
	}
	return StatusAdvancer{
		preparingDuration: preparingDuration,
		deliveryDuration:  deliveryDuration,
	}, nil
}

// NewDefaultStatusAdvancer uses the 2 minute / 5 minute schedule.
func NewDefaultStatusAdvancer() StatusAdvancer {
	return StatusAdvancer{
		preparingDuration: DefaultPreparingDuration,
		deliveryDuration:  DefaultDeliveryDuration,
	}
}

func (a StatusAdvancer) PreparingDuration() time.Duration {
	return a.preparingDuration
}

func (a StatusAdvancer) DeliveryDuration() time.Duration {
	return a.deliveryDuration
}

// Advance applies at most one transition to o as of now and reports whether
// one happened.
func (a StatusAdvancer) Advance(o *order.Order, now time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	elapsed := o.Elapsed(now)

	switch o.Status() {
	case order.Preparing:
		if elapsed < a.preparingDuration {
			return false, nil
		}
		if err := o.Dispatch(now); err != nil {
			return false, err
		}
		return true, nil
	case order.OutForDelivery:
		if elapsed < a.deliveryDuration {
			return false, nil
		}
		if err := o.Deliver(now); err != nil {
			return false, err
		}
		return true, nil
	case order.Delivered:
		return false, nil
	case order.Unknown:
	}

	return false, o.Status().Validate()
}

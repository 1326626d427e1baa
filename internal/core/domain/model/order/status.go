package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Transitions only move forward,
// one step at a time:
//
//	Preparing ──> OutForDelivery ──> Delivered
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Preparing is the initial status: the kitchen is working on the order.
	Preparing

	// OutForDelivery means the order has left the kitchen.
	OutForDelivery

	// Delivered is terminal.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Preparing, OutForDelivery, Delivered}
}

// ParseStatus maps the wire form back to a Status.
//
// Returns:
//   - the matching Status
//   - (Unknown, validation error) for any other string, including "Unknown"
//
// Example:
//
//	s, err := order.ParseStatus("Out for Delivery") // OutForDelivery, nil
func ParseStatus(str string) (Status, error) {
	for s, wire := range getValidStatusStrings() {
		if wire == str {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", str))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire form ("Preparing", "Out for Delivery", "Delivered"),
// or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition exists.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Dispatch transitions Preparing to OutForDelivery.
//
// Returns:
//   - (OutForDelivery, nil) from Preparing
//   - (Unknown, validation error) from any other status
func (s Status) Dispatch() (Status, error) {
	if s != Preparing {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}
	return OutForDelivery, nil
}

// Deliver transitions OutForDelivery to Delivered.
//
// Returns:
//   - (Delivered, nil) from OutForDelivery
//   - (Unknown, validation error) from any other status
func (s Status) Deliver() (Status, error) {
	if s != OutForDelivery {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}

// Next returns the single forward step from s.
//
// Returns:
//   - (OutForDelivery, nil) from Preparing
//   - (Delivered, nil) from OutForDelivery
//   - (Unknown, validation error) from Delivered or Unknown
//
// Example:
//
//	for s := order.Preparing; !s.IsTerminal(); {
//	    s, _ = s.Next()
//	}
func (s Status) Next() (Status, error) {
	switch s {
	case Preparing:
		return s.Dispatch()
	case OutForDelivery:
		return s.Deliver()
	case Unknown, Delivered:
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s has no next status", s.String()),
	)
}

package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

// AdvanceOrderStatusesCommand triggers one sweep over all orders, moving each
// order at most one step along Preparing, OutForDelivery, Delivered.
//
// Example:
//
//	cmd := NewAdvanceOrderStatusesCommand()
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("sweep failed: %w", err)
//	}
type AdvanceOrderStatusesCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrAdvanceOrderStatusesCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusesCommand must be created via NewAdvanceOrderStatusesCommand constructor",
	)
)

// NewAdvanceOrderStatusesCommand creates a parameterless sweep command.
func NewAdvanceOrderStatusesCommand() AdvanceOrderStatusesCommand {
	return AdvanceOrderStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderStatusesCommandIsNotConstructed if validation fails.
func (c *AdvanceOrderStatusesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusesCommandIsNotConstructed)
}

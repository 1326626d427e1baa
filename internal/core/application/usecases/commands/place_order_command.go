package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer placing an order for catalog items.
// Item ids may repeat; each occurrence becomes its own line in the order.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), []kernel.UUID{burgerID, colaID})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the order id and requires at least one valid item id.
func NewPlaceOrderCommand(orderID kernel.UUID, itemIDs []kernel.UUID) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemIDs(itemIDs),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemIDs returns a copy of the requested item ids in request order.
func (c PlaceOrderCommand) ItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.itemIDs))
	copy(ids, c.itemIDs)
	return ids
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return errs.NewValueIsRequiredError("itemIds")
	}
	for i, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("itemIds[%d]", i), err)
		}
	}
	c.itemIDs = make([]kernel.UUID, len(itemIDs))
	copy(c.itemIDs, itemIDs)
	return nil
}

package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/clock"
	"fooddelivery/internal/pkg/errs"
)

// InvalidItemReference is the parameter name of the validation error returned
// when an item id does not resolve to a catalog entry.
const InvalidItemReference = "invalid item reference"

// PlaceOrderCommandHandler resolves item ids against the catalog and creates
// the order in Preparing status.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, clock.NewSystem())
//	placed, err := handler.Handle(ctx, cmd)
//	if errs.IsValidation(err) {
//	    // unknown item id: nothing was created
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
}

func NewPlaceOrderCommandHandler(uowFactory UoWFactory, clk clock.Clock) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle is atomic: if any item id fails to resolve, a validation error naming
// every unresolved id is returned and no order is stored.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := h.resolveItems(ctx, uow.MenuRepository(), cmd)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(cmd.OrderID(), items, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

// resolveItems snapshots the current catalog entry for every requested id.
func (h *PlaceOrderCommandHandler) resolveItems(
	ctx context.Context,
	menuRepo ports.MenuRepository,
	cmd PlaceOrderCommand,
) ([]menu.MenuItem, error) {
	ids := cmd.ItemIDs()
	items := make([]menu.MenuItem, 0, len(ids))

	var unresolved []error
	for _, id := range ids {
		item, err := menuRepo.Get(ctx, id)
		if errs.IsNotFound(err) {
			unresolved = append(unresolved, err)
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if len(unresolved) > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(InvalidItemReference, errors.Join(unresolved...))
	}

	return items, nil
}

package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/menu"
)

// UpsertMenuItemResult is the stored item and whether it was newly created.
type UpsertMenuItemResult struct {
	Item    menu.MenuItem
	Created bool
}

// UpsertMenuItemCommandHandler creates or reprices catalog entries.
// The lookup by (name, category) and the write share one transaction, so two
// concurrent upserts of the same identity never produce two items.
type UpsertMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewUpsertMenuItemCommandHandler(uowFactory MenuUoWFactory) UpsertMenuItemCommandHandler {
	return UpsertMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle inserts a new item with a fresh id, or updates the price of the
// existing item with the same identity, keeping its id.
func (h *UpsertMenuItemCommandHandler) Handle(ctx context.Context, cmd UpsertMenuItemCommand) (UpsertMenuItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpsertMenuItemResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpsertMenuItemResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()

	item, found, err := menuRepo.FindByNameAndCategory(ctx, cmd.Name(), cmd.Category())
	if err != nil {
		return UpsertMenuItemResult{}, err
	}

	if found {
		if err = item.ChangePrice(cmd.Price()); err != nil {
			return UpsertMenuItemResult{}, err
		}
		err = menuRepo.Update(ctx, item)
	} else {
		item, err = menu.NewMenuItem(cmd.Name(), cmd.Price(), cmd.Category())
		if err != nil {
			return UpsertMenuItemResult{}, err
		}
		err = menuRepo.Add(ctx, item)
	}
	if err != nil {
		return UpsertMenuItemResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpsertMenuItemResult{}, err
	}

	return UpsertMenuItemResult{Item: item, Created: !found}, nil
}

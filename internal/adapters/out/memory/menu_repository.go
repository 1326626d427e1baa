package memory

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"
)

// MenuRepository implements ports.MenuRepository over a Store.
type MenuRepository struct {
	store *Store
	tx    *changeset
}

func NewMenuRepository(store *Store) *MenuRepository {
	return &MenuRepository{store: store}
}

func (r *MenuRepository) Add(_ context.Context, item menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	return r.store.write(r.tx, func(cs *changeset) error {
		if _, exists := r.store.menuItem(cs, item.ID()); exists {
			return errs.NewValueIsInvalidErrorWithCause(
				"menu item id", fmt.Errorf("%s already exists", item.ID()),
			)
		}
		key := identity{name: item.Name(), category: item.Category()}
		if _, exists := r.store.menuItemByIdentity(cs, key); exists {
			return errs.NewValueIsInvalidErrorWithCause(
				"menu item", fmt.Errorf("%s %q already exists", item.Category(), item.Name()),
			)
		}

		cs.menuItems[item.ID()] = item
		cs.menuNew = append(cs.menuNew, item.ID())
		return nil
	})
}

func (r *MenuRepository) Update(_ context.Context, item menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	return r.store.write(r.tx, func(cs *changeset) error {
		existing, ok := r.store.menuItem(cs, item.ID())
		if !ok {
			return errs.NewObjectNotFoundError("menuItemID", item.ID())
		}

		updated := existing
		if err := updated.ChangePrice(item.Price()); err != nil {
			return err
		}
		cs.menuItems[item.ID()] = updated
		return nil
	})
}

func (r *MenuRepository) Get(_ context.Context, id kernel.UUID) (menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return menu.MenuItem{}, err
	}

	var (
		item  menu.MenuItem
		found bool
	)
	r.store.read(r.tx, func() {
		item, found = r.store.menuItem(r.tx, id)
	})
	if !found {
		return menu.MenuItem{}, errs.NewObjectNotFoundError("menuItemID", id)
	}
	return item, nil
}

func (r *MenuRepository) FindByNameAndCategory(
	_ context.Context,
	name string,
	category menu.Category,
) (menu.MenuItem, bool, error) {
	var (
		item  menu.MenuItem
		found bool
	)
	key := identity{name: menu.NormalizeName(name), category: category}
	r.store.read(r.tx, func() {
		item, found = r.store.menuItemByIdentity(r.tx, key)
	})
	return item, found, nil
}

func (r *MenuRepository) GetAll(_ context.Context) ([]menu.MenuItem, error) {
	var items []menu.MenuItem
	r.store.read(r.tx, func() {
		items = r.store.allMenuItems(r.tx)
	})
	return items, nil
}

// Package ports defines the contracts between the domain/application layers and
// infrastructure: repositories, the unit of work, and event publication.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for the menu catalog.
// Returned items are values, so callers can never mutate stored state.
type MenuRepository interface {
	// Add persists a new menu item. The (name, category) pair must not exist yet.
	Add(ctx context.Context, item menu.MenuItem) error

	// Update persists a changed price for an existing item.
	Update(ctx context.Context, item menu.MenuItem) error

	// Get retrieves an item by id.
	// Returns *errs.ObjectNotFoundError if it does not exist.
	Get(ctx context.Context, id kernel.UUID) (menu.MenuItem, error)

	// FindByNameAndCategory looks up the upsert identity.
	// found is false when no item matches.
	FindByNameAndCategory(ctx context.Context, name string, category menu.Category) (item menu.MenuItem, found bool, err error)

	// GetAll returns every item in insertion order.
	GetAll(ctx context.Context) ([]menu.MenuItem, error)
}

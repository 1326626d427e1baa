package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery lists the whole catalog in insertion order.
//
// Example:
//
//	items, err := handler.Handle(ctx, NewGetMenuQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to list menu: %w", err)
//	}
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

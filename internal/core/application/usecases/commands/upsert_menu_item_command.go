package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpsertMenuItemCommandIsNotConstructed = errors.New(
	"UpsertMenuItemCommand must be created via NewUpsertMenuItemCommand constructor",
)

// UpsertMenuItemCommand adds a menu item or, when an item with the same
// (name, category) exists, replaces its price.
//
// Example:
//
//	price, _ := kernel.NewPriceFromFloat(9.99)
//	cmd, err := NewUpsertMenuItemCommand("Burger", price, menu.MainCourse)
//	if err != nil {
//	    return fmt.Errorf("invalid menu item: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type UpsertMenuItemCommand struct { //nolint:recvcheck //using for validation
	name     string
	price    kernel.Price
	category menu.Category

	guard guard.ConstructorGuard
}

// NewUpsertMenuItemCommand validates that name is non-empty, price is positive
// and category is one of the menu categories. All failures are reported together.
func NewUpsertMenuItemCommand(name string, price kernel.Price, category menu.Category) (UpsertMenuItemCommand, error) {
	cmd := UpsertMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
	); err != nil {
		return UpsertMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpsertMenuItemCommandIsNotConstructed)
}

func (c UpsertMenuItemCommand) Name() string {
	return c.name
}

func (c UpsertMenuItemCommand) Price() kernel.Price {
	return c.price
}

func (c UpsertMenuItemCommand) Category() menu.Category {
	return c.category
}

func (c *UpsertMenuItemCommand) setName(name string) error {
	name = menu.NormalizeName(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpsertMenuItemCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *UpsertMenuItemCommand) setCategory(category menu.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

package menu

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned by Validate for zero-value items.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")

// MenuItem is a dish or drink on the menu.
//
// MenuItem is a value: assigning it copies it, and none of its fields can be
// mutated through a copy. Orders rely on this, the items they hold are
// snapshots unaffected by later price changes.
//
// Invariants:
//   - id never changes once assigned
//   - name is non-empty (surrounding whitespace is trimmed)
//   - price is positive
//   - category is one of MainCourse, Dessert, Beverage
type MenuItem struct {
	id       kernel.UUID
	name     string
	price    kernel.Price
	category Category

	isConstructed bool
}

// NewMenuItem creates a catalog entry with a fresh identifier.
func NewMenuItem(name string, price kernel.Price, category Category) (MenuItem, error) {
	return RestoreMenuItem(kernel.NewUUID(), name, price, category)
}

// RestoreMenuItem rebuilds an item read from storage.
func RestoreMenuItem(id kernel.UUID, name string, price kernel.Price, category Category) (MenuItem, error) {
	item := MenuItem{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setCategory(category),
	); err != nil {
		return MenuItem{}, err
	}

	return item, nil
}

// Validate reports whether the item was built through a constructor.
func (m MenuItem) Validate() error {
	if !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m MenuItem) ID() kernel.UUID {
	return m.id
}

func (m MenuItem) Name() string {
	return m.name
}

func (m MenuItem) Price() kernel.Price {
	return m.price
}

func (m MenuItem) Category() Category {
	return m.category
}

// HasIdentity reports whether the item matches the upsert identity (name, category).
func (m MenuItem) HasIdentity(name string, category Category) bool {
	return m.name == NormalizeName(name) && m.category == category
}

// ChangePrice replaces the price, keeping id, name and category.
func (m *MenuItem) ChangePrice(price kernel.Price) error {
	if err := m.Validate(); err != nil {
		return err
	}
	return m.setPrice(price)
}

// IsEqual compares every field, which is what snapshot comparisons need.
func (m MenuItem) IsEqual(other MenuItem) bool {
	return m.id.IsEqual(other.id) &&
		m.name == other.name &&
		m.price.IsEqual(other.price) &&
		m.category == other.category
}

// NormalizeName trims the name the same way the constructor does, so lookups
// by identity agree with stored items.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = NormalizeName(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	m.category = category
	return nil
}

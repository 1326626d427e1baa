// Package menurepo persists the menu catalog with GORM. One row per item; the
// upsert identity (name, category) is enforced by a unique index.
package menurepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO is the menu_items row. Seq records insertion order.
type MenuItemDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Seq      int64           `gorm:"autoIncrement;uniqueIndex"`
	Name     string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_menu_items_identity"`
	Category string          `gorm:"type:varchar(32);not null;uniqueIndex:idx_menu_items_identity"`
	Price    decimal.Decimal `gorm:"type:numeric;not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:       item.ID().Bytes(),
		Name:     item.Name(),
		Category: item.Category().String(),
		Price:    item.Price().Decimal(),
	}
}

func toDomain(dto MenuItemDTO) (menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return menu.MenuItem{}, err
	}

	category, err := menu.ParseCategory(dto.Category)
	if err != nil {
		return menu.MenuItem{}, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return menu.MenuItem{}, err
	}

	return menu.RestoreMenuItem(id, dto.Name, price, category)
}

// Package orderrepo persists order aggregates with GORM. An order is one row in
// orders plus one row per item snapshot in order_items; snapshots are copies of
// the menu item at placement and do not reference menu_items.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Seq records creation order. The timestamps are
// owned by the domain, so GORM's automatic time tracking is off.
type OrderDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Seq       int64          `gorm:"autoIncrement;uniqueIndex"`
	Status    string         `gorm:"type:varchar(32);not null;index"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime:false"`
	Items     []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one item snapshot. Position keeps placement order and allows
// the same menu item to appear more than once.
type OrderItemDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position   int             `gorm:"primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Category   string          `gorm:"type:varchar(32);not null"`
	Price      decimal.Decimal `gorm:"type:numeric;not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := o.Items()

	dto := OrderDTO{
		ID:        orderID,
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
		Items:     make([]OrderItemDTO, 0, len(items)),
	}
	for i, item := range items {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:    orderID,
			Position:   i,
			MenuItemID: item.ID().Bytes(),
			Name:       item.Name(),
			Category:   item.Category().String(),
			Price:      item.Price().Decimal(),
		})
	}
	return dto
}

// toDomain expects dto.Items sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]menu.MenuItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, items, status, dto.CreatedAt, dto.UpdatedAt)
}

func itemToDomain(dto OrderItemDTO) (menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
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

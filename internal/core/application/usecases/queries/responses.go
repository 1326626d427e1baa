// Package queries contains read-only operations over the menu catalog and the orders.
// Query handlers read committed state and return plain response structs, never aggregates.
package queries

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
)

// MenuItemResponse is the read model of a menu item, used both for catalog
// listings and for the item snapshots inside an order.
type MenuItemResponse struct {
	ID       kernel.UUID
	Name     string
	Price    kernel.Price
	Category menu.Category
}

// OrderResponse is the read model of an order. Items keep placement order.
type OrderResponse struct {
	ID        kernel.UUID
	Items     []MenuItemResponse
	Status    order.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewMenuItemResponse(item menu.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:       item.ID(),
		Name:     item.Name(),
		Price:    item.Price(),
		Category: item.Category(),
	}
}

func NewOrderResponse(o *order.Order) OrderResponse {
	items := o.Items()
	resp := OrderResponse{
		ID:        o.ID(),
		Items:     make([]MenuItemResponse, 0, len(items)),
		Status:    o.Status(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, NewMenuItemResponse(item))
	}
	return resp
}

package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// GetMenuQueryHandler reads the catalog outside any transaction.
type GetMenuQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetMenuQueryHandler(uowFactory ports.UnitOfWorkFactory) GetMenuQueryHandler {
	return GetMenuQueryHandler{uowFactory: uowFactory}
}

// Handle returns every menu item. An empty catalog yields an empty, non-nil slice.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.uowFactory.Create().MenuRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, NewMenuItemResponse(item))
	}
	return resp, nil
}

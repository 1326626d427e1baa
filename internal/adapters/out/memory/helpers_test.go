package memory_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newMenuItem(t *testing.T, name, amount string, category menu.Category) menu.MenuItem {
	t.Helper()
	price, err := kernel.NewPriceFromString(amount)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(name, price, category)
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, at time.Time, items ...menu.MenuItem) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), items, at)
	require.NoError(t, err)
	return o
}

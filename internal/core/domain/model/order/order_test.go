package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newMenuItem(t *testing.T, name string, price float64) menu.MenuItem {
	t.Helper()
	p, err := kernel.NewPriceFromFloat(price)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(name, p, menu.MainCourse)
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), []menu.MenuItem{newMenuItem(t, "Burger", 9.99)}, placedAt)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should start preparing with equal timestamps", func(t *testing.T) {
		burger := newMenuItem(t, "Burger", 9.99)
		fries := newMenuItem(t, "Fries", 3.5)
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, []menu.MenuItem{burger, fries, burger}, placedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, id.IsEqual(o.ID()))
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, placedAt, o.CreatedAt())
		assert.Equal(t, placedAt, o.UpdatedAt())
		require.Len(t, o.Items(), 3)
		assert.True(t, burger.IsEqual(o.Items()[0]))
		assert.True(t, fries.IsEqual(o.Items()[1]))
		assert.True(t, burger.IsEqual(o.Items()[2]))
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), nil, placedAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should reject zero value items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), []menu.MenuItem{{}}, placedAt)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid id and time together", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, []menu.MenuItem{newMenuItem(t, "Burger", 1)}, time.Time{})
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "createdAt")
	})

	t.Run("should normalize timestamps to UTC", func(t *testing.T) {
		local := time.Date(2024, 5, 1, 14, 0, 0, 123456789, time.FixedZone("CEST", 2*3600))
		o, err := order.NewOrder(kernel.NewUUID(), []menu.MenuItem{newMenuItem(t, "Burger", 1)}, local)

		require.NoError(t, err)
		assert.Equal(t, time.UTC, o.CreatedAt().Location())
		assert.True(t, o.CreatedAt().Equal(local.Truncate(time.Microsecond)))
	})
}

func TestOrder_ItemsAreSnapshots(t *testing.T) {
	burger := newMenuItem(t, "Burger", 9.99)
	items := []menu.MenuItem{burger}
	o, err := order.NewOrder(kernel.NewUUID(), items, placedAt)
	require.NoError(t, err)

	// Catalog price change after placement.
	newPrice, _ := kernel.NewPriceFromFloat(12.99)
	require.NoError(t, burger.ChangePrice(newPrice))
	// Caller mutates its slice after placement.
	items[0] = newMenuItem(t, "Pizza", 11)
	// Caller mutates the returned slice.
	o.Items()[0] = newMenuItem(t, "Salad", 7)

	require.Len(t, o.Items(), 1)
	assert.Equal(t, "Burger", o.Items()[0].Name())
	assert.Equal(t, "9.99", o.Items()[0].Price().String())
}

func TestOrder_Lifecycle(t *testing.T) {
	o := newOrder(t)

	dispatchedAt := placedAt.Add(2 * time.Minute)
	require.NoError(t, o.Dispatch(dispatchedAt))
	assert.Equal(t, order.OutForDelivery, o.Status())
	assert.Equal(t, dispatchedAt, o.UpdatedAt())
	assert.Equal(t, placedAt, o.CreatedAt())

	deliveredAt := dispatchedAt.Add(5 * time.Minute)
	require.NoError(t, o.Deliver(deliveredAt))
	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, deliveredAt, o.UpdatedAt())

	events := o.DomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, order.StatusChangedEvent{
		OrderID: o.ID(), From: order.Preparing, To: order.OutForDelivery, OccurredAt: dispatchedAt,
	}, events[0])
	assert.Equal(t, order.StatusChangedEvent{
		OrderID: o.ID(), From: order.OutForDelivery, To: order.Delivered, OccurredAt: deliveredAt,
	}, events[1])

	o.ClearDomainEvents()
	assert.Empty(t, o.DomainEvents())
}

func TestOrder_TransitionsAreForwardOnly(t *testing.T) {
	t.Run("cannot deliver while preparing", func(t *testing.T) {
		o := newOrder(t)
		err := o.Deliver(placedAt.Add(time.Hour))
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, placedAt, o.UpdatedAt())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("cannot dispatch twice", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Dispatch(placedAt.Add(time.Minute)))
		require.Error(t, o.Dispatch(placedAt.Add(2*time.Minute)))
		assert.Equal(t, order.OutForDelivery, o.Status())
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Dispatch(placedAt.Add(time.Minute)))
		require.NoError(t, o.Deliver(placedAt.Add(2*time.Minute)))
		require.Error(t, o.Dispatch(placedAt.Add(3*time.Minute)))
		require.Error(t, o.Deliver(placedAt.Add(3*time.Minute)))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("cannot transition back in time", func(t *testing.T) {
		o := newOrder(t)
		require.Error(t, o.Dispatch(placedAt.Add(-time.Second)))
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("zero value order", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Dispatch(placedAt), order.ErrOrderIsNotConstructed)
		require.ErrorIs(t, o.Deliver(placedAt), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Elapsed(t *testing.T) {
	o := newOrder(t)
	assert.Equal(t, 90*time.Second, o.Elapsed(placedAt.Add(90*time.Second)))

	require.NoError(t, o.Dispatch(placedAt.Add(3*time.Minute)))
	assert.Equal(t, time.Minute, o.Elapsed(placedAt.Add(4*time.Minute)))
}

func TestRestoreOrder(t *testing.T) {
	items := []menu.MenuItem{newMenuItem(t, "Burger", 9.99)}

	t.Run("should restore any valid status", func(t *testing.T) {
		for _, status := range order.Statuses() {
			o, err := order.RestoreOrder(kernel.NewUUID(), items, status, placedAt, placedAt.Add(time.Minute))
			require.NoError(t, err)
			assert.Equal(t, status, o.Status())
			assert.Empty(t, o.DomainEvents())
		}
	})

	t.Run("should reject updatedAt before createdAt", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), items, order.Preparing, placedAt, placedAt.Add(-time.Minute))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), items, order.Unknown, placedAt, placedAt)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Clone(t *testing.T) {
	o := newOrder(t)
	require.NoError(t, o.Dispatch(placedAt.Add(2*time.Minute)))

	c := o.Clone()
	require.NoError(t, c.Deliver(placedAt.Add(10*time.Minute)))

	assert.True(t, o.IsEqual(c))
	assert.Equal(t, order.OutForDelivery, o.Status())
	assert.Len(t, o.DomainEvents(), 1)
	assert.Equal(t, order.Delivered, c.Status())
	assert.Len(t, c.DomainEvents(), 2)

	var nilOrder *order.Order
	assert.Nil(t, nilOrder.Clone())
}

package memory_test

import (
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/memory"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_AddAndGet(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewOrderRepository(memory.NewStore())
	burger := newMenuItem(t, "Burger", "9.99", menu.MainCourse)
	placed := newOrder(t, baseTime, burger, burger)

	require.NoError(t, repo.Add(ctx, placed))

	got, err := repo.Get(ctx, placed.ID())
	require.NoError(t, err)
	assert.True(t, placed.IsEqual(got))
	assert.Equal(t, order.Preparing, got.Status())
	assert.Equal(t, placed.Items(), got.Items())
	assert.Equal(t, baseTime, got.CreatedAt())
}

func TestOrderRepository_Get_ReturnsCopies(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewOrderRepository(memory.NewStore())
	placed := newOrder(t, baseTime, newMenuItem(t, "Burger", "9.99", menu.MainCourse))
	require.NoError(t, repo.Add(ctx, placed))

	first, err := repo.Get(ctx, placed.ID())
	require.NoError(t, err)
	require.NoError(t, first.Dispatch(baseTime.Add(time.Minute)))

	second, err := repo.Get(ctx, placed.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Preparing, second.Status(), "unsaved changes must not leak into the store")
}

func TestOrderRepository_Update(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewOrderRepository(memory.NewStore())
	placed := newOrder(t, baseTime, newMenuItem(t, "Burger", "9.99", menu.MainCourse))
	require.NoError(t, repo.Add(ctx, placed))

	dispatchedAt := baseTime.Add(2 * time.Minute)
	require.NoError(t, placed.Dispatch(dispatchedAt))
	require.NoError(t, repo.Update(ctx, placed))

	got, err := repo.Get(ctx, placed.ID())
	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, got.Status())
	assert.Equal(t, dispatchedAt, got.UpdatedAt())
	assert.Equal(t, baseTime, got.CreatedAt())
	assert.Empty(t, got.DomainEvents())
}

func TestOrderRepository_Errors(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewOrderRepository(memory.NewStore())
	placed := newOrder(t, baseTime, newMenuItem(t, "Burger", "9.99", menu.MainCourse))

	t.Run("get unknown", func(t *testing.T) {
		_, err := repo.Get(ctx, kernel.NewUUID())
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("update unknown", func(t *testing.T) {
		err := repo.Update(ctx, placed)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("add twice", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, placed))
		err := repo.Add(ctx, placed)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("not constructed", func(t *testing.T) {
		err := repo.Add(ctx, &order.Order{})
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrderRepository_GetAll_CreationOrder(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewOrderRepository(memory.NewStore())
	burger := newMenuItem(t, "Burger", "9.99", menu.MainCourse)

	var ids []kernel.UUID
	for i := range 5 {
		o := newOrder(t, baseTime.Add(time.Duration(i)*time.Second), burger)
		ids = append(ids, o.ID())
		require.NoError(t, repo.Add(ctx, o))
	}

	orders, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, len(ids))
	for i, o := range orders {
		assert.True(t, ids[i].IsEqual(o.ID()))
	}
}

func TestOrderRepository_GetAllIDs_IncludesPendingWrites(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	repo := memory.NewOrderRepository(store)
	factory := memory.NewUnitOfWorkFactory(store)
	burger := newMenuItem(t, "Burger", "9.99", menu.MainCourse)

	committed := newOrder(t, baseTime, burger)
	require.NoError(t, repo.Add(ctx, committed))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	pending := newOrder(t, baseTime.Add(time.Second), burger)
	require.NoError(t, uow.OrderRepository().Add(ctx, pending))

	inTx, err := uow.OrderRepository().GetAllIDs(ctx)
	require.NoError(t, err)
	require.Len(t, inTx, 2)
	assert.True(t, committed.ID().IsEqual(inTx[0]))
	assert.True(t, pending.ID().IsEqual(inTx[1]))

	require.NoError(t, uow.Rollback(ctx))

	ids, err := repo.GetAllIDs(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.True(t, committed.ID().IsEqual(ids[0]))
}

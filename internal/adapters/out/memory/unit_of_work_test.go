package memory_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/memory"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_CommitMakesWritesVisible(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	burger := newMenuItem(t, "Burger", "9.99", menu.MainCourse)
	placed := newOrder(t, baseTime, burger)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.MenuRepository().Add(ctx, burger))
	require.NoError(t, uow.OrderRepository().Add(ctx, placed))

	// staged writes are visible inside the transaction
	_, err := uow.MenuRepository().Get(ctx, burger.ID())
	require.NoError(t, err)
	all, err := uow.OrderRepository().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, uow.Commit(ctx))

	reader := factory.Create()
	got, err := reader.OrderRepository().Get(ctx, placed.ID())
	require.NoError(t, err)
	assert.True(t, placed.IsEqual(got))
	items, err := reader.MenuRepository().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	burger := newMenuItem(t, "Burger", "9.99", menu.MainCourse)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.MenuRepository().Add(ctx, burger))
	require.NoError(t, uow.Rollback(ctx))

	items, err := factory.Create().MenuRepository().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUnitOfWork_CommitWithoutBegin(t *testing.T) {
	ctx := t.Context()
	uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()

	require.ErrorIs(t, uow.Commit(ctx), memory.ErrNoActiveTransaction)
	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)
}

func TestUnitOfWork_RollbackAfterCommitIsHarmless(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit(ctx))
	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)

	// the lock was released exactly once: another unit of work can begin
	other := factory.Create()
	require.NoError(t, other.Begin(ctx))
	require.NoError(t, other.Rollback(ctx))
}

func TestUnitOfWork_BeginHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().Begin(ctx)

	require.ErrorIs(t, err, context.Canceled)
}

func TestUnitOfWork_ReadersWaitForCommit(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	burger := newMenuItem(t, "Burger", "9.99", menu.MainCourse)

	writer := factory.Create()
	require.NoError(t, writer.Begin(ctx))
	require.NoError(t, writer.MenuRepository().Add(ctx, burger))

	read := make(chan []menu.MenuItem)
	go func() {
		items, _ := factory.Create().MenuRepository().GetAll(ctx)
		read <- items
	}()

	select {
	case <-read:
		t.Fatal("reader observed an uncommitted transaction")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, writer.Commit(ctx))
	assert.Len(t, <-read, 1)
}

func uowFactory(factory *memory.UnitOfWorkFactory) commands.UoWFactory {
	return uowFactoryFunc(func() commands.UoW { return factory.Create() })
}

type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW { return f() }

type menuUoWFactoryFunc func() commands.MenuUoW

func (f menuUoWFactoryFunc) Create() commands.MenuUoW { return f() }

type orderUoWFactoryFunc func() commands.OrderUoW

func (f orderUoWFactoryFunc) Create() commands.OrderUoW { return f() }

type discardPublisher struct{}

func (discardPublisher) Publish(context.Context, order.StatusChangedEvent) error { return nil }

var _ ports.EventPublisher = discardPublisher{}

func TestConcurrentUpsertsOfSameIdentityCreateOneItem(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	handler := commands.NewUpsertMenuItemCommandHandler(
		menuUoWFactoryFunc(func() commands.MenuUoW { return factory.Create() }),
	)

	const workers = 32
	var wg sync.WaitGroup
	created := make(chan bool, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			price, err := kernel.NewPriceFromFloat(float64(10 + i))
			assert.NoError(t, err)
			cmd, err := commands.NewUpsertMenuItemCommand("Burger", price, menu.MainCourse)
			assert.NoError(t, err)
			result, err := handler.Handle(ctx, cmd)
			assert.NoError(t, err)
			created <- result.Created
		}()
	}
	wg.Wait()
	close(created)

	createdCount := 0
	for c := range created {
		if c {
			createdCount++
		}
	}

	items, err := factory.Create().MenuRepository().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, createdCount)
}

func TestConcurrentPlacementAndSweep(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	clk := clock.NewManual(baseTime)

	burger := newMenuItem(t, "Burger", "9.99", menu.MainCourse)
	require.NoError(t, factory.Create().MenuRepository().Add(ctx, burger))

	placeHandler := commands.NewPlaceOrderCommandHandler(uowFactory(factory), clk)
	sweepHandler := commands.NewAdvanceOrderStatusesCommandHandler(
		orderUoWFactoryFunc(func() commands.OrderUoW { return factory.Create() }),
		services.NewDefaultStatusAdvancer(),
		clk,
		discardPublisher{},
		slog.New(slog.DiscardHandler),
	)

	const orders = 50
	var wg sync.WaitGroup
	for range orders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), []kernel.UUID{burger.ID()})
			assert.NoError(t, err)
			_, err = placeHandler.Handle(ctx, cmd)
			assert.NoError(t, err)
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 5 {
			_, err := sweepHandler.Handle(ctx, commands.NewAdvanceOrderStatusesCommand())
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	clk.Advance(2 * time.Minute)
	report, err := sweepHandler.Handle(ctx, commands.NewAdvanceOrderStatusesCommand())
	require.NoError(t, err)
	assert.Equal(t, commands.SweepReport{Examined: orders, Advanced: orders}, report)

	all, err := factory.Create().OrderRepository().GetAll(ctx)
	require.NoError(t, err)
	for _, o := range all {
		assert.Equal(t, order.OutForDelivery, o.Status())
	}
}

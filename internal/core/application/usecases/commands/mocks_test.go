package commands_test

import (
	"context"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MenuRepo struct{ mock.Mock }

func (m *MenuRepo) Add(ctx context.Context, item menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MenuRepo) Update(ctx context.Context, item menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MenuRepo) Get(ctx context.Context, id kernel.UUID) (menu.MenuItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(menu.MenuItem), args.Error(1)
}

func (m *MenuRepo) FindByNameAndCategory(
	ctx context.Context,
	name string,
	category menu.Category,
) (menu.MenuItem, bool, error) {
	args := m.Called(ctx, name, category)
	return args.Get(0).(menu.MenuItem), args.Bool(1), args.Error(2)
}

func (m *MenuRepo) GetAll(ctx context.Context) ([]menu.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.MenuItem), args.Error(1)
}

type OrderRepo struct{ mock.Mock }

func (m *OrderRepo) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepo) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepo) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *OrderRepo) GetAllIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *OrderRepo) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// UnitOfWork satisfies every unit of work view used by the handlers.
type UnitOfWork struct{ mock.Mock }

func (m *UnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWork) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *UnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type UoWFactory struct{ mock.Mock }

func (m *UoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MenuUoWFactory struct{ mock.Mock }

func (m *MenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type OrderUoWFactory struct{ mock.Mock }

func (m *OrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type EventPublisher struct{ mock.Mock }

func (m *EventPublisher) Publish(ctx context.Context, event order.StatusChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func mustPrice(amount float64) kernel.Price {
	price, err := kernel.NewPriceFromFloat(amount)
	if err != nil {
		panic(err)
	}
	return price
}

func mustMenuItem(name string, amount float64, category menu.Category) menu.MenuItem {
	item, err := menu.NewMenuItem(name, mustPrice(amount), category)
	if err != nil {
		panic(err)
	}
	return item
}

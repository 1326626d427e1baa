package memory

import (
	"context"
	"errors"

	"fooddelivery/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one shared Store.
//
// Example:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork serializes transactions on the store: Begin takes the write lock
// and Commit or Rollback releases it. A UnitOfWork is used by one goroutine.
type UnitOfWork struct {
	store *Store
	tx    *changeset
}

// Begin is a no-op when a transaction is already active.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()
	uow.tx = newChangeset()
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	uow.store.apply(uow.tx)
	uow.tx = nil
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	uow.tx = nil
	uow.store.mu.Unlock()
	return nil
}

// MenuRepository is bound to the active transaction, if any.
func (uow *UnitOfWork) MenuRepository() ports.MenuRepository {
	return &MenuRepository{store: uow.store, tx: uow.tx}
}

// OrderRepository is bound to the active transaction, if any.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: uow.store, tx: uow.tx}
}

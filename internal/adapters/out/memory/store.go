// Package memory is the default storage driver: the catalog and the orders
// live in one process-local Store guarded by a read/write mutex.
//
// A UnitOfWork holds the write lock from Begin until Commit or Rollback and
// stages its writes, so a commit applies them all at once and a rollback leaves
// the store untouched. Repositories obtained without Begin read under the read
// lock and write one record at a time.
//
// Repositories must be obtained after Begin; a repository taken before Begin
// would try to lock the store the unit of work already holds.
package memory

import (
	"sync"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
)

type identity struct {
	name     string
	category menu.Category
}

// Store owns every menu item and order. Items and orders handed out are copies.
type Store struct {
	mu sync.RWMutex

	menuItems map[kernel.UUID]menu.MenuItem
	menuByKey map[identity]kernel.UUID
	menuSeq   []kernel.UUID
	orders    map[kernel.UUID]*order.Order
	ordersSeq []kernel.UUID
}

func NewStore() *Store {
	return &Store{
		menuItems: make(map[kernel.UUID]menu.MenuItem),
		menuByKey: make(map[identity]kernel.UUID),
		orders:    make(map[kernel.UUID]*order.Order),
	}
}

// changeset holds the writes of one unit of work until commit.
type changeset struct {
	menuItems map[kernel.UUID]menu.MenuItem
	menuNew   []kernel.UUID
	orders    map[kernel.UUID]*order.Order
	ordersNew []kernel.UUID
}

func newChangeset() *changeset {
	return &changeset{
		menuItems: make(map[kernel.UUID]menu.MenuItem),
		orders:    make(map[kernel.UUID]*order.Order),
	}
}

// apply must be called with the write lock held.
func (s *Store) apply(cs *changeset) {
	s.menuSeq = append(s.menuSeq, cs.menuNew...)
	for id, item := range cs.menuItems {
		s.menuItems[id] = item
		s.menuByKey[identity{name: item.Name(), category: item.Category()}] = id
	}
	s.ordersSeq = append(s.ordersSeq, cs.ordersNew...)
	for id, o := range cs.orders {
		s.orders[id] = o
	}
}

// The lookups below must be called with the lock held. cs may be nil.

func (s *Store) menuItem(cs *changeset, id kernel.UUID) (menu.MenuItem, bool) {
	if cs != nil {
		if item, ok := cs.menuItems[id]; ok {
			return item, true
		}
	}
	item, ok := s.menuItems[id]
	return item, ok
}

func (s *Store) menuItemByIdentity(cs *changeset, key identity) (menu.MenuItem, bool) {
	if cs != nil {
		for _, item := range cs.menuItems {
			if item.HasIdentity(key.name, key.category) {
				return item, true
			}
		}
	}
	id, ok := s.menuByKey[key]
	if !ok {
		return menu.MenuItem{}, false
	}
	return s.menuItem(cs, id)
}

func (s *Store) allMenuItems(cs *changeset) []menu.MenuItem {
	ids := s.menuSeq
	if cs != nil {
		ids = append(ids[:len(ids):len(ids)], cs.menuNew...)
	}
	items := make([]menu.MenuItem, 0, len(ids))
	for _, id := range ids {
		item, _ := s.menuItem(cs, id)
		items = append(items, item)
	}
	return items
}

func (s *Store) order(cs *changeset, id kernel.UUID) (*order.Order, bool) {
	if cs != nil {
		if o, ok := cs.orders[id]; ok {
			return o, true
		}
	}
	o, ok := s.orders[id]
	return o, ok
}

func (s *Store) orderIDs(cs *changeset) []kernel.UUID {
	ids := s.ordersSeq[:len(s.ordersSeq):len(s.ordersSeq)]
	if cs != nil {
		ids = append(ids, cs.ordersNew...)
	}
	return ids
}

func (s *Store) allOrders(cs *changeset) []*order.Order {
	ids := s.orderIDs(cs)
	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		o, _ := s.order(cs, id)
		orders = append(orders, o.Clone())
	}
	return orders
}

// read runs fn under the read lock unless a unit of work already holds the
// write lock.
func (s *Store) read(cs *changeset, fn func()) {
	if cs == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn()
}

// write stages fn's changes in the unit of work's changeset, or applies them
// immediately under the write lock when there is none.
func (s *Store) write(cs *changeset, fn func(cs *changeset) error) error {
	if cs != nil {
		return fn(cs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	staged := newChangeset()
	if err := fn(staged); err != nil {
		return err
	}
	s.apply(staged)
	return nil
}

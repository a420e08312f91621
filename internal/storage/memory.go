// Package storage holds the in-memory order store used when no database is
// configured.
package storage

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"coffeeshop/internal/model"
	"coffeeshop/internal/service"
)

type MemoryStore struct {
	mu     sync.RWMutex
	orders []model.Order
	lastID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Create assigns the next id from a counter. Ids of deleted orders are
// never handed out again.
func (s *MemoryStore) Create(_ context.Context, o model.Order) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	o.ID = s.lastID
	o = o.Clone()
	s.orders = append(s.orders, o)
	return o.Clone(), nil
}

func (s *MemoryStore) List(_ context.Context) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.Clone())
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id int) (model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Order{}, service.ErrNotFound
	}
	return s.orders[i].Clone(), nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, id int, status model.Status) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Order{}, service.ErrNotFound
	}
	s.orders[i].Status = status
	return s.orders[i].Clone(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return service.ErrNotFound
	}
	s.orders = slices.Delete(s.orders, i, i+1)
	return nil
}

// indexOf relies on orders being sorted by id. Caller holds mu.
func (s *MemoryStore) indexOf(id int) int {
	i, found := slices.BinarySearchFunc(s.orders, id, func(o model.Order, id int) int {
		return cmp.Compare(o.ID, id)
	})
	if !found {
		return -1
	}
	return i
}

package venues

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps venues in process memory. Documents are copied on the
// way in and out, so callers never share slices with the store.
type MemoryStore struct {
	mu     sync.RWMutex
	venues map[uuid.UUID]*Venue
	order  []uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{venues: make(map[uuid.UUID]*Venue)}
}

func (s *MemoryStore) Insert(ctx context.Context, venue *Venue) error {
	if err := ctx.Err(); err != nil {
		return storageErr("insert venue", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.venues[venue.ID]; exists {
		return storageErr("insert venue", errDuplicateID)
	}
	s.venues[venue.ID] = venue.clone()
	s.order = append(s.order, venue.ID)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageErr("get venue", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.venues[id]
	if !ok {
		return nil, ErrVenueNotFound
	}
	return v.clone(), nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageErr("list venues", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Venue, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.venues[id].clone())
	}
	return out, nil
}

func (s *MemoryStore) Replace(ctx context.Context, venue *Venue) error {
	if err := ctx.Err(); err != nil {
		return storageErr("replace venue", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[venue.ID]; !ok {
		return ErrVenueNotFound
	}
	s.venues[venue.ID] = venue.clone()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return storageErr("delete venue", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[id]; !ok {
		return ErrVenueNotFound
	}
	delete(s.venues, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

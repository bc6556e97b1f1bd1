package venues

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Cache holds whole venue documents by id. A miss is (nil, nil).
type Cache interface {
	Get(ctx context.Context, id uuid.UUID) (*Venue, error)
	Set(ctx context.Context, venue *Venue) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CachedStore is a cache-aside Store. Reads try the cache first; every write
// goes to the backing store and then drops the cached copy. Cache failures
// are logged and never fail the request, so a cached copy may lag behind for
// up to the cache TTL; writes load through GetFresh and never build on it.
type CachedStore struct {
	next   Store
	cache  Cache
	logger *zap.SugaredLogger
}

func NewCachedStore(next Store, cache Cache, logger *zap.SugaredLogger) *CachedStore {
	return &CachedStore{next: next, cache: cache, logger: logger}
}

func (s *CachedStore) Insert(ctx context.Context, venue *Venue) error {
	return s.next.Insert(ctx, venue)
}

func (s *CachedStore) Get(ctx context.Context, id uuid.UUID) (*Venue, error) {
	v, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.Warnw("venue cache read failed", "venue_id", id, "error", err.Error())
	}
	if v != nil {
		return v, nil
	}

	v, err = s.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, v); err != nil {
		s.logger.Warnw("venue cache write failed", "venue_id", id, "error", err.Error())
	}
	return v, nil
}

// GetFresh bypasses the cache. Read-modify-write operations load through it.
func (s *CachedStore) GetFresh(ctx context.Context, id uuid.UUID) (*Venue, error) {
	return s.next.Get(ctx, id)
}

func (s *CachedStore) List(ctx context.Context) ([]Venue, error) {
	return s.next.List(ctx)
}

func (s *CachedStore) Replace(ctx context.Context, venue *Venue) error {
	if err := s.next.Replace(ctx, venue); err != nil {
		return err
	}
	s.invalidate(ctx, venue.ID)
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.next.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *CachedStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *CachedStore) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Warnw("venue cache invalidation failed", "venue_id", id, "error", err.Error())
	}
}

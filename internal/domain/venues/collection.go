package venues

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Collection is one embedded sequence of a venue (hours or comments). Items
// are addressed by venue id plus item id and have no storage of their own:
// every operation loads the venue, changes the slice in memory and persists
// the whole venue. build receives the creation instant, which comments use
// as their default date.
type Collection[T any, In any, P any] struct {
	repo     *Repository
	notFound *NotFoundError
	items    func(*Venue) *[]T
	idOf     func(*T) uuid.UUID
	build    func(In, uuid.UUID, time.Time) T
	apply    func(*T, P)
}

// AddTo appends a new item with an id unique within the venue's sequence.
func (c *Collection[T, In, P]) AddTo(ctx context.Context, venueID uuid.UUID, in In) (*T, error) {
	v, err := c.repo.load(ctx, venueID)
	if err != nil {
		return nil, err
	}

	items := c.items(v)
	item := c.build(in, newItemID(*items, c.idOf), c.repo.now())
	if err := validateStruct(item); err != nil {
		return nil, err
	}

	*items = append(*items, item)
	if err := c.repo.save(ctx, v); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListFor returns the venue's items in stored order.
func (c *Collection[T, In, P]) ListFor(ctx context.Context, venueID uuid.UUID) ([]T, error) {
	v, err := c.repo.store.Get(ctx, venueID)
	if err != nil {
		return nil, err
	}
	items := *c.items(v)
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T, In, P]) GetWithin(ctx context.Context, venueID, itemID uuid.UUID) (*T, error) {
	v, err := c.repo.store.Get(ctx, venueID)
	if err != nil {
		return nil, err
	}
	items := *c.items(v)
	i := c.index(items, itemID)
	if i < 0 {
		return nil, c.notFound
	}
	return &items[i], nil
}

// UpdateWithin merges the patch into the addressed item, re-validates it and
// persists the venue.
func (c *Collection[T, In, P]) UpdateWithin(ctx context.Context, venueID, itemID uuid.UUID, patch P) (*T, error) {
	v, err := c.repo.load(ctx, venueID)
	if err != nil {
		return nil, err
	}

	items := *c.items(v)
	i := c.index(items, itemID)
	if i < 0 {
		return nil, c.notFound
	}

	updated := items[i]
	c.apply(&updated, patch)
	if err := validateStruct(updated); err != nil {
		return nil, err
	}
	items[i] = updated

	if err := c.repo.save(ctx, v); err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveFrom deletes the addressed item, keeping the order of the rest.
func (c *Collection[T, In, P]) RemoveFrom(ctx context.Context, venueID, itemID uuid.UUID) error {
	v, err := c.repo.load(ctx, venueID)
	if err != nil {
		return err
	}

	items := c.items(v)
	i := c.index(*items, itemID)
	if i < 0 {
		return c.notFound
	}
	*items = slices.Delete(*items, i, i+1)

	return c.repo.save(ctx, v)
}

func (c *Collection[T, In, P]) index(items []T, id uuid.UUID) int {
	return slices.IndexFunc(items, func(item T) bool {
		return c.idOf(&item) == id
	})
}

// newItemID returns a random id not already used in items.
func newItemID[T any](items []T, idOf func(*T) uuid.UUID) uuid.UUID {
	for {
		id := uuid.New()
		taken := slices.ContainsFunc(items, func(item T) bool {
			return idOf(&item) == id
		})
		if !taken {
			return id
		}
	}
}

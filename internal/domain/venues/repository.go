package venues

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository applies the aggregate rules on top of a Store. All mutations of
// embedded items are a read-modify-write of the whole venue; concurrent
// writers to the same venue follow last-writer-wins.
type Repository struct {
	store    Store
	now      func() time.Time
	hours    *Collection[Hour, HourInput, HourPatch]
	comments *Collection[Comment, CommentInput, CommentPatch]
}

func NewRepository(store Store) *Repository {
	r := &Repository{
		store: store,
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
	r.hours = &Collection[Hour, HourInput, HourPatch]{
		repo:     r,
		notFound: ErrHourNotFound,
		items:    func(v *Venue) *[]Hour { return &v.Hours },
		idOf:     func(h *Hour) uuid.UUID { return h.ID },
		build:    newHour,
		apply:    applyHourPatch,
	}
	r.comments = &Collection[Comment, CommentInput, CommentPatch]{
		repo:     r,
		notFound: ErrCommentNotFound,
		items:    func(v *Venue) *[]Comment { return &v.Comments },
		idOf:     func(c *Comment) uuid.UUID { return c.ID },
		build:    newComment,
		apply:    applyCommentPatch,
	}
	return r
}

// Hours addresses the opening hours embedded in venues.
func (r *Repository) Hours() *Collection[Hour, HourInput, HourPatch] { return r.hours }

// Comments addresses the comments embedded in venues.
func (r *Repository) Comments() *Collection[Comment, CommentInput, CommentPatch] { return r.comments }

// freshGetter is implemented by stores that may serve Get from a copy. Loads
// that feed a write go through GetFresh so a stale copy is never written
// back over committed changes.
type freshGetter interface {
	GetFresh(ctx context.Context, id uuid.UUID) (*Venue, error)
}

// load reads the venue for a read-modify-write.
func (r *Repository) load(ctx context.Context, id uuid.UUID) (*Venue, error) {
	if s, ok := r.store.(freshGetter); ok {
		return s.GetFresh(ctx, id)
	}
	return r.store.Get(ctx, id)
}

// Ping reports whether the backing store is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// Create validates the input, assigns identifiers to the venue and to any
// initial embedded items, and persists the aggregate.
func (r *Repository) Create(ctx context.Context, in VenueInput) (*Venue, error) {
	now := r.now()
	v := &Venue{
		ID:           uuid.New(),
		Name:         in.Name,
		Address:      in.Address,
		FoodAndDrink: in.FoodAndDrink,
		Coordinates:  coordinatesOrNil(in.Coordinates),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Rating != nil {
		v.Rating = *in.Rating
	}
	for _, h := range in.Hours {
		v.Hours = append(v.Hours, newHour(h, newItemID(v.Hours, r.hours.idOf), now))
	}
	for _, c := range in.Comments {
		v.Comments = append(v.Comments, newComment(c, newItemID(v.Comments, r.comments.idOf), now))
	}
	v.normalize()

	if err := validateStruct(v); err != nil {
		return nil, err
	}
	if err := r.store.Insert(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	return r.store.Get(ctx, id)
}

func (r *Repository) List(ctx context.Context) ([]Venue, error) {
	return r.store.List(ctx)
}

// Update merges the provided fields into the stored venue, re-validates the
// whole aggregate and writes it back.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, patch VenuePatch) (*Venue, error) {
	v, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		v.Name = *patch.Name
	}
	if patch.Address != nil {
		v.Address = *patch.Address
	}
	if patch.Rating != nil {
		v.Rating = *patch.Rating
	}
	if patch.FoodAndDrink != nil {
		v.FoodAndDrink = *patch.FoodAndDrink
	}
	if patch.Coordinates != nil {
		v.Coordinates = coordinatesOrNil(*patch.Coordinates)
	}
	v.normalize()

	if err := validateStruct(v); err != nil {
		return nil, err
	}
	return v, r.save(ctx, v)
}

// Delete removes the venue record. Hours and comments go with it.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}

func (r *Repository) save(ctx context.Context, v *Venue) error {
	v.UpdatedAt = r.now()
	return r.store.Replace(ctx, v)
}

func coordinatesOrNil(c []float64) []float64 {
	if len(c) == 0 {
		return nil
	}
	return c
}

// newHour ignores the creation time; hours carry no timestamp.
func newHour(in HourInput, id uuid.UUID, _ time.Time) Hour {
	return Hour{
		ID:       id,
		Days:     in.Days,
		Open:     in.Open,
		Close:    in.Close,
		IsClosed: in.IsClosed,
	}
}

func applyHourPatch(h *Hour, p HourPatch) {
	if p.Days != nil {
		h.Days = *p.Days
	}
	if p.Open != nil {
		h.Open = *p.Open
	}
	if p.Close != nil {
		h.Close = *p.Close
	}
	if p.IsClosed != nil {
		h.IsClosed = *p.IsClosed
	}
}

func newComment(in CommentInput, id uuid.UUID, now time.Time) Comment {
	c := Comment{
		ID:     id,
		Author: in.Author,
		Text:   in.Text,
		Date:   now,
	}
	if in.Rating != nil {
		c.Rating = *in.Rating
	}
	if in.Date != nil {
		c.Date = in.Date.UTC()
	}
	return c
}

func applyCommentPatch(c *Comment, p CommentPatch) {
	if p.Author != nil {
		c.Author = *p.Author
	}
	if p.Rating != nil {
		c.Rating = *p.Rating
	}
	if p.Text != nil {
		c.Text = *p.Text
	}
}

package venues

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ylyas2004/react-backend/internal/db"
)

func newSQLiteStore(t *testing.T) Store {
	t.Helper()
	conn, err := db.NewSQLite(filepath.Join(t.TempDir(), "venues.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.Migrate(conn, db.DialectSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewSQLiteStore(conn)
}

var storeFactories = map[string]func(t *testing.T) Store{
	"memory": func(*testing.T) Store { return NewMemoryStore() },
	"sqlite": newSQLiteStore,
}

func sampleVenue(name string) *Venue {
	now := time.Now().UTC().Truncate(time.Microsecond)
	v := &Venue{
		ID:           uuid.New(),
		Name:         name,
		Address:      "Main St 1",
		Rating:       4,
		FoodAndDrink: []string{"coffee"},
		Coordinates:  []float64{13.4, 52.5},
		Hours:        []Hour{{ID: uuid.New(), Days: "Mon-Fri", Open: "08:00", Close: "18:00"}},
		Comments:     []Comment{{ID: uuid.New(), Author: "Ann", Rating: 5, Text: "Lovely", Date: now}},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return v
}

func assertSameVenue(t *testing.T, got, want *Venue) {
	t.Helper()
	if got.ID != want.ID || got.Name != want.Name || got.Address != want.Address || got.Rating != want.Rating {
		t.Errorf("scalar fields differ\n got: %+v\nwant: %+v", got, want)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Errorf("timestamps differ: got %v/%v want %v/%v", got.CreatedAt, got.UpdatedAt, want.CreatedAt, want.UpdatedAt)
	}
	if len(got.Coordinates) != len(want.Coordinates) {
		t.Fatalf("coordinates = %v, want %v", got.Coordinates, want.Coordinates)
	}
	for i := range want.Coordinates {
		if got.Coordinates[i] != want.Coordinates[i] {
			t.Errorf("coordinates = %v, want %v", got.Coordinates, want.Coordinates)
		}
	}
	if len(got.FoodAndDrink) != len(want.FoodAndDrink) {
		t.Errorf("foodAndDrink = %v, want %v", got.FoodAndDrink, want.FoodAndDrink)
	}
	if len(got.Hours) != len(want.Hours) || len(got.Comments) != len(want.Comments) {
		t.Fatalf("embedded items differ: got %d hours %d comments", len(got.Hours), len(got.Comments))
	}
	for i := range want.Hours {
		if got.Hours[i] != want.Hours[i] {
			t.Errorf("hours[%d] = %+v, want %+v", i, got.Hours[i], want.Hours[i])
		}
	}
	for i := range want.Comments {
		g, w := got.Comments[i], want.Comments[i]
		if g.ID != w.ID || g.Author != w.Author || g.Text != w.Text || g.Rating != w.Rating || !g.Date.Equal(w.Date) {
			t.Errorf("comments[%d] = %+v, want %+v", i, g, w)
		}
	}
}

func TestStores(t *testing.T) {
	for name, newStore := range storeFactories {
		t.Run(name, func(t *testing.T) {
			t.Run("insert and get", func(t *testing.T) {
				s := newStore(t)
				ctx := context.Background()
				v := sampleVenue("A")

				if err := s.Insert(ctx, v); err != nil {
					t.Fatalf("insert: %v", err)
				}
				got, err := s.Get(ctx, v.ID)
				if err != nil {
					t.Fatalf("get: %v", err)
				}
				assertSameVenue(t, got, v)
			})

			t.Run("get unknown", func(t *testing.T) {
				s := newStore(t)
				_, err := s.Get(context.Background(), uuid.New())
				if !errors.Is(err, ErrVenueNotFound) {
					t.Fatalf("error = %v, want ErrVenueNotFound", err)
				}
			})

			t.Run("duplicate insert", func(t *testing.T) {
				s := newStore(t)
				ctx := context.Background()
				v := sampleVenue("A")
				if err := s.Insert(ctx, v); err != nil {
					t.Fatalf("insert: %v", err)
				}
				err := s.Insert(ctx, v)
				var serr *StorageError
				if !errors.As(err, &serr) {
					t.Fatalf("error = %v, want *StorageError", err)
				}
			})

			t.Run("replace whole document", func(t *testing.T) {
				s := newStore(t)
				ctx := context.Background()
				v := sampleVenue("A")
				if err := s.Insert(ctx, v); err != nil {
					t.Fatalf("insert: %v", err)
				}

				v.Name = "B"
				v.Coordinates = nil
				v.Hours = append(v.Hours, Hour{ID: uuid.New(), Days: "Sun", IsClosed: true})
				v.Comments = []Comment{}
				if err := s.Replace(ctx, v); err != nil {
					t.Fatalf("replace: %v", err)
				}

				got, err := s.Get(ctx, v.ID)
				if err != nil {
					t.Fatalf("get: %v", err)
				}
				assertSameVenue(t, got, v)
				if got.Comments == nil {
					t.Error("comments should decode as an empty slice")
				}

				err = s.Replace(ctx, sampleVenue("ghost"))
				if !errors.Is(err, ErrVenueNotFound) {
					t.Fatalf("replace unknown: error = %v, want ErrVenueNotFound", err)
				}
			})

			t.Run("list order and delete", func(t *testing.T) {
				s := newStore(t)
				ctx := context.Background()
				var ids []uuid.UUID
				for _, n := range []string{"one", "two", "three"} {
					v := sampleVenue(n)
					if err := s.Insert(ctx, v); err != nil {
						t.Fatalf("insert: %v", err)
					}
					ids = append(ids, v.ID)
				}

				if err := s.Delete(ctx, ids[1]); err != nil {
					t.Fatalf("delete: %v", err)
				}
				if err := s.Delete(ctx, ids[1]); !errors.Is(err, ErrVenueNotFound) {
					t.Fatalf("second delete: error = %v, want ErrVenueNotFound", err)
				}

				list, err := s.List(ctx)
				if err != nil {
					t.Fatalf("list: %v", err)
				}
				if len(list) != 2 || list[0].Name != "one" || list[1].Name != "three" {
					t.Fatalf("list = %+v", list)
				}
			})

			t.Run("empty list", func(t *testing.T) {
				s := newStore(t)
				list, err := s.List(context.Background())
				if err != nil {
					t.Fatalf("list: %v", err)
				}
				if list == nil || len(list) != 0 {
					t.Errorf("list = %#v, want empty slice", list)
				}
			})

			t.Run("ping", func(t *testing.T) {
				if err := newStore(t).Ping(context.Background()); err != nil {
					t.Fatalf("ping: %v", err)
				}
			})
		})
	}
}

func TestRepositoryOverSQLite(t *testing.T) {
	repo := NewRepository(newSQLiteStore(t))
	ctx := context.Background()

	v, err := repo.Create(ctx, VenueInput{Name: "Cafe A", Coordinates: []float64{-0.12, 51.5}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	c, err := repo.Comments().AddTo(ctx, v.ID, CommentInput{Author: "Jo", Text: "Nice", Rating: ptr(4.0)})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}

	got, err := repo.Comments().GetWithin(ctx, v.ID, c.ID)
	if err != nil {
		t.Fatalf("get comment: %v", err)
	}
	if got.Text != "Nice" || got.Rating != 4 {
		t.Errorf("comment = %+v", got)
	}

	if err := repo.Delete(ctx, v.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = repo.Comments().ListFor(ctx, v.ID)
	assertNotFound(t, err, ErrVenueNotFound)
}

func TestMemoryStoreCopiesDocuments(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	v := sampleVenue("A")
	if err := s.Insert(ctx, v); err != nil {
		t.Fatalf("insert: %v", err)
	}

	v.Name = "mutated"
	v.Hours[0].Days = "mutated"

	got, _ := s.Get(ctx, v.ID)
	if got.Name != "A" || got.Hours[0].Days != "Mon-Fri" {
		t.Fatalf("store shares memory with caller: %+v", got)
	}

	got.Comments[0].Text = "mutated"
	again, _ := s.Get(ctx, v.ID)
	if again.Comments[0].Text != "Lovely" {
		t.Fatal("store shares memory with reader")
	}
}

func TestMemoryStoreHonoursCancelledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx, uuid.New())
	var serr *StorageError
	if !errors.As(err, &serr) || !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want storage error wrapping context.Canceled", err)
	}
}

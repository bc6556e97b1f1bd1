package venues

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func ptr[T any](v T) *T { return &v }

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(NewMemoryStore())
}

func mustCreate(t *testing.T, repo *Repository, in VenueInput) *Venue {
	t.Helper()
	v, err := repo.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create venue: %v", err)
	}
	return v
}

func assertNotFound(t *testing.T, err error, want *NotFoundError) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("error = %v, want %v", err, want)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error %v does not match ErrNotFound", err)
	}
}

func assertValidation(t *testing.T, err error) *ValidationError {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v (%T), want *ValidationError", err, err)
	}
	return verr
}

func TestCreateDefaults(t *testing.T) {
	repo := newTestRepository(t)

	v := mustCreate(t, repo, VenueInput{Name: "Cafe A"})

	if v.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if v.Rating != 0 {
		t.Errorf("rating = %v, want 0", v.Rating)
	}
	if v.Hours == nil || len(v.Hours) != 0 {
		t.Errorf("hours = %#v, want empty slice", v.Hours)
	}
	if v.Comments == nil || len(v.Comments) != 0 {
		t.Errorf("comments = %#v, want empty slice", v.Comments)
	}
	if v.FoodAndDrink == nil {
		t.Error("foodAndDrink should be an empty slice")
	}
	if v.Coordinates != nil {
		t.Errorf("coordinates = %v, want nil", v.Coordinates)
	}
	if v.CreatedAt.IsZero() || !v.CreatedAt.Equal(v.UpdatedAt) {
		t.Errorf("timestamps not initialised: created %v updated %v", v.CreatedAt, v.UpdatedAt)
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created := mustCreate(t, repo, VenueInput{
		Name:         "Kebapci",
		Address:      "Istiklal Cd. 12",
		Rating:       ptr(4.5),
		FoodAndDrink: []string{"kebab", "ayran"},
		Coordinates:  []float64{28.97, 41.03},
		Hours:        []HourInput{{Days: "Mon-Fri", Open: "09:00", Close: "22:00"}},
		Comments:     []CommentInput{{Author: "Ali", Rating: ptr(5.0), Text: "Best in town"}},
	})

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get venue: %v", err)
	}
	if !reflect.DeepEqual(created, got) {
		t.Errorf("round trip mismatch\n got: %+v\nwant: %+v", got, created)
	}
	if got.Hours[0].ID == uuid.Nil || got.Comments[0].ID == uuid.Nil {
		t.Error("initial embedded items should get ids")
	}
	if got.Comments[0].Date.IsZero() {
		t.Error("comment date should default to creation time")
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      VenueInput
		wantErr bool
	}{
		{"missing name", VenueInput{}, true},
		{"rating below range", VenueInput{Name: "A", Rating: ptr(-1.0)}, true},
		{"rating above range", VenueInput{Name: "A", Rating: ptr(6.0)}, true},
		{"rating lower bound", VenueInput{Name: "A", Rating: ptr(0.0)}, false},
		{"rating upper bound", VenueInput{Name: "A", Rating: ptr(5.0)}, false},
		{"coordinates wrong length", VenueInput{Name: "A", Coordinates: []float64{1}}, true},
		{"latitude out of range", VenueInput{Name: "A", Coordinates: []float64{10, 95}}, true},
		{"hour without days", VenueInput{Name: "A", Hours: []HourInput{{Open: "9"}}}, true},
		{"comment rating out of range", VenueInput{Name: "A", Comments: []CommentInput{{Author: "a", Text: "t", Rating: ptr(6.0)}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t)
			_, err := repo.Create(context.Background(), tt.in)
			if tt.wantErr {
				assertValidation(t, err)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidationMessageNamesField(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Create(context.Background(), VenueInput{
		Name:  "A",
		Hours: []HourInput{{Days: "Mon"}, {}},
	})
	verr := assertValidation(t, err)

	if len(verr.Fields) != 1 || verr.Fields[0].Field != "hours[1].days" {
		t.Fatalf("fields = %+v, want hours[1].days", verr.Fields)
	}
	if verr.Error() != "hours[1].days is required" {
		t.Errorf("message = %q", verr.Error())
	}
}

func TestUpdateMergesAndRevalidates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	v := mustCreate(t, repo, VenueInput{Name: "Old", Address: "Street 1", FoodAndDrink: []string{"tea"}})

	updated, err := repo.Update(ctx, v.ID, VenuePatch{Name: ptr("New"), Rating: ptr(3.0)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "New" || updated.Rating != 3 {
		t.Errorf("fields not applied: %+v", updated)
	}
	if updated.Address != "Street 1" || !reflect.DeepEqual(updated.FoodAndDrink, []string{"tea"}) {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if updated.UpdatedAt.Before(v.UpdatedAt) {
		t.Errorf("updatedAt went backwards")
	}

	for _, patch := range []VenuePatch{
		{Rating: ptr(-1.0)},
		{Rating: ptr(6.0)},
		{Name: ptr("")},
	} {
		_, err := repo.Update(ctx, v.ID, patch)
		assertValidation(t, err)
	}

	stored, err := repo.GetByID(ctx, v.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Name != "New" || stored.Rating != 3 {
		t.Errorf("rejected update was persisted: %+v", stored)
	}

	_, err = repo.Update(ctx, uuid.New(), VenuePatch{Name: ptr("x")})
	assertNotFound(t, err, ErrVenueNotFound)
}

func TestUpdateClearsCoordinates(t *testing.T) {
	repo := newTestRepository(t)
	v := mustCreate(t, repo, VenueInput{Name: "A", Coordinates: []float64{1, 2}})

	updated, err := repo.Update(context.Background(), v.ID, VenuePatch{Coordinates: &[]float64{}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Coordinates != nil {
		t.Errorf("coordinates = %v, want nil", updated.Coordinates)
	}
}

func TestDeleteCascadesAndIsNotIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	v := mustCreate(t, repo, VenueInput{Name: "A"})
	hour, err := repo.Hours().AddTo(ctx, v.ID, HourInput{Days: "Sat"})
	if err != nil {
		t.Fatalf("add hour: %v", err)
	}

	if err := repo.Delete(ctx, v.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = repo.GetByID(ctx, v.ID)
	assertNotFound(t, err, ErrVenueNotFound)

	_, err = repo.Hours().GetWithin(ctx, v.ID, hour.ID)
	assertNotFound(t, err, ErrVenueNotFound)

	err = repo.Delete(ctx, v.ID)
	assertNotFound(t, err, ErrVenueNotFound)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	repo := newTestRepository(t)
	names := []string{"first", "second", "third"}
	for _, n := range names {
		mustCreate(t, repo, VenueInput{Name: n})
	}

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != len(names) {
		t.Fatalf("len = %d, want %d", len(list), len(names))
	}
	for i, n := range names {
		if list[i].Name != n {
			t.Errorf("list[%d] = %q, want %q", i, list[i].Name, n)
		}
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/ylyas2004/react-backend/internal/domain/venues"
)

const backendDetail = "dial tcp 10.1.2.3:5432: connection refused"

// brokenStore fails every call the way an unreachable database does.
type brokenStore struct{}

func (brokenStore) fail(op string) error {
	return &venues.StorageError{Op: op, Err: errors.New(backendDetail)}
}

func (s brokenStore) Insert(context.Context, *venues.Venue) error { return s.fail("insert venue") }

func (s brokenStore) Get(context.Context, uuid.UUID) (*venues.Venue, error) {
	return nil, s.fail("get venue")
}

func (s brokenStore) List(context.Context) ([]venues.Venue, error) {
	return nil, s.fail("list venues")
}

func (s brokenStore) Replace(context.Context, *venues.Venue) error { return s.fail("replace venue") }

func (s brokenStore) Delete(context.Context, uuid.UUID) error { return s.fail("delete venue") }

func (s brokenStore) Ping(context.Context) error { return s.fail("ping") }

func TestStorageFailuresAreInternalErrors(t *testing.T) {
	app := newTestApplicationWithStore(t, config{}, brokenStore{})
	mux := app.mount()
	venue := "/api/venues/" + uuid.NewString()

	tests := []struct {
		name, method, path, body string
	}{
		{"list venues", http.MethodGet, "/api/venues", ""},
		{"get venue", http.MethodGet, venue, ""},
		{"create venue", http.MethodPost, "/api/venues", `{"name":"Cafe A"}`},
		{"update venue", http.MethodPut, venue, `{"name":"B"}`},
		{"delete venue", http.MethodDelete, venue, ""},
		{"list hours", http.MethodGet, venue + "/hours", ""},
		{"add comment", http.MethodPost, venue + "/comments", `{"author":"Bo","text":"hi"}`},
		{"delete comment", http.MethodDelete, venue + "/comments/" + uuid.NewString(), ""},
		{"health", http.MethodGet, "/api/health", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeRequest(newRequest(t, tt.method, tt.path, tt.body), mux)
			checkError(t, rr, http.StatusInternalServerError, "the server encountered a problem")

			body := rr.Body.String()
			if strings.Contains(body, "10.1.2.3") || strings.Contains(body, "storage:") {
				t.Errorf("response leaks backend detail: %s", body)
			}
		})
	}
}

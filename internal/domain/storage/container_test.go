package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ylyas2004/react-backend/internal/domain/venues"
	"go.uber.org/zap"
)

func TestOpenMemory(t *testing.T) {
	c, err := Open(Config{Driver: DriverMemory}, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer c.Close()

	if c.Pool != nil {
		t.Error("memory driver should not expose a pool")
	}
	if err := c.Venues.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestOpenSQLitePersistsAcrossReopen(t *testing.T) {
	cfg := Config{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "data", "venues.db")}
	ctx := context.Background()

	c, err := Open(cfg, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	v, err := c.Venues.Create(ctx, venues.VenueInput{Name: "Cafe A"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	c, err = Open(cfg, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer c.Close()

	got, err := c.Venues.GetByID(ctx, v.ID)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.Name != "Cafe A" {
		t.Errorf("name = %q", got.Name)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(Config{Driver: "mongo"}, zap.NewNop().Sugar()); err == nil {
		t.Fatal("expected an error for an unknown driver")
	}
}

func TestCloseAllReversesAndJoins(t *testing.T) {
	var order []int
	errA, errB := errors.New("a"), errors.New("b")
	err := closeAll([]func() error{
		func() error { order = append(order, 1); return errA },
		func() error { order = append(order, 2); return nil },
		func() error { order = append(order, 3); return errB },
	})

	if len(order) != 3 || order[0] != 3 || order[2] != 1 {
		t.Errorf("order = %v, want newest first", order)
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("error = %v, want both failures joined", err)
	}
}

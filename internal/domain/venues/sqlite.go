package venues

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// SQLiteStore keeps each venue as a JSON document in a single row. Longitude
// and latitude are copied into their own indexed columns.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Insert(ctx context.Context, venue *Venue) error {
	doc, err := encodeDocument(venue)
	if err != nil {
		return storageErr("insert venue", err)
	}
	lng, lat := lngLat(venue.Coordinates)

	query := `
		INSERT INTO venues (id, document, longitude, latitude, created_at)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, venue.ID.String(), doc, lng, lat, venue.CreatedAt); err != nil {
		return storageErr("insert venue", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM venues WHERE id = ?`, id.String()).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, storageErr("get venue", err)
	}

	v, err := decodeDocument(doc)
	if err != nil {
		return nil, storageErr("get venue", err)
	}
	return v, nil
}

// List returns venues in insertion order.
func (s *SQLiteStore) List(ctx context.Context) ([]Venue, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT document FROM venues ORDER BY rowid`)
	if err != nil {
		return nil, storageErr("list venues", err)
	}
	defer rows.Close()

	venues := []Venue{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, storageErr("list venues", err)
		}
		v, err := decodeDocument(doc)
		if err != nil {
			return nil, storageErr("list venues", err)
		}
		venues = append(venues, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list venues", err)
	}
	return venues, nil
}

func (s *SQLiteStore) Replace(ctx context.Context, venue *Venue) error {
	doc, err := encodeDocument(venue)
	if err != nil {
		return storageErr("replace venue", err)
	}
	lng, lat := lngLat(venue.Coordinates)

	query := `UPDATE venues SET document = ?, longitude = ?, latitude = ? WHERE id = ?`
	result, err := s.db.ExecContext(ctx, query, doc, lng, lat, venue.ID.String())
	if err != nil {
		return storageErr("replace venue", err)
	}
	return affectedOne(result, "replace venue")
}

func (s *SQLiteStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id.String())
	if err != nil {
		return storageErr("delete venue", err)
	}
	return affectedOne(result, "delete venue")
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return storageErr("ping", err)
	}
	return nil
}

func affectedOne(result sql.Result, op string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return storageErr(op, err)
	}
	if n == 0 {
		return ErrVenueNotFound
	}
	return nil
}

func encodeDocument(v *Venue) (string, error) {
	v.normalize()
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeDocument(doc string) (*Venue, error) {
	var v Venue
	if err := json.Unmarshal([]byte(doc), &v); err != nil {
		return nil, err
	}
	v.normalize()
	return &v, nil
}

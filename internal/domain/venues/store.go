package venues

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var QueryTimeoutDuration = time.Second * 5

// PostgresStore keeps one row per venue. Scalar fields are columns, the
// coordinates are a PostGIS point, and hours and comments are jsonb arrays
// on the same row, so each aggregate write is a single UPDATE.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

const venueColumns = `
	id, name, address, rating, food_and_drink,
	ST_X(coordinates::geometry), ST_Y(coordinates::geometry),
	hours, comments, created_at, updated_at`

func (s *PostgresStore) Insert(ctx context.Context, venue *Venue) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	hours, comments, err := encodeEmbedded(venue)
	if err != nil {
		return storageErr("insert venue", err)
	}
	lng, lat := lngLat(venue.Coordinates)

	query := `
		INSERT INTO venues (
			id, name, address, rating, food_and_drink, coordinates,
			hours, comments, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			ST_SetSRID(ST_MakePoint($6::float8, $7::float8), 4326)::geography,
			$8, $9, $10, $11
		)`
	_, err = s.db.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.Address,
		venue.Rating,
		venue.FoodAndDrink,
		lng,
		lat,
		hours,
		comments,
		venue.CreatedAt,
		venue.UpdatedAt,
	)
	if err != nil {
		return storageErr("insert venue", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`
	v, err := scanVenue(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, storageErr("get venue", err)
	}
	return v, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY created_at, id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, storageErr("list venues", err)
	}
	defer rows.Close()

	venues := []Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
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

// Replace overwrites every column of the venue row.
func (s *PostgresStore) Replace(ctx context.Context, venue *Venue) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	hours, comments, err := encodeEmbedded(venue)
	if err != nil {
		return storageErr("replace venue", err)
	}
	lng, lat := lngLat(venue.Coordinates)

	query := `
		UPDATE venues SET
			name = $2,
			address = $3,
			rating = $4,
			food_and_drink = $5,
			coordinates = ST_SetSRID(ST_MakePoint($6::float8, $7::float8), 4326)::geography,
			hours = $8,
			comments = $9,
			updated_at = $10
		WHERE id = $1`
	tag, err := s.db.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.Address,
		venue.Rating,
		venue.FoodAndDrink,
		lng,
		lat,
		hours,
		comments,
		venue.UpdatedAt,
	)
	if err != nil {
		return storageErr("replace venue", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVenueNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := s.db.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete venue", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVenueNotFound
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return storageErr("ping", err)
	}
	return nil
}

func scanVenue(row pgx.Row) (*Venue, error) {
	var (
		v            Venue
		lng, lat     *float64
		hoursJSON    []byte
		commentsJSON []byte
	)
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Address,
		&v.Rating,
		&v.FoodAndDrink,
		&lng,
		&lat,
		&hoursJSON,
		&commentsJSON,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lng != nil && lat != nil {
		v.Coordinates = []float64{*lng, *lat}
	}
	if err := json.Unmarshal(hoursJSON, &v.Hours); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(commentsJSON, &v.Comments); err != nil {
		return nil, err
	}
	v.CreatedAt = v.CreatedAt.UTC()
	v.UpdatedAt = v.UpdatedAt.UTC()
	v.normalize()
	return &v, nil
}

func encodeEmbedded(v *Venue) (hours, comments []byte, err error) {
	v.normalize()
	if hours, err = json.Marshal(v.Hours); err != nil {
		return nil, nil, err
	}
	if comments, err = json.Marshal(v.Comments); err != nil {
		return nil, nil, err
	}
	return hours, comments, nil
}

// lngLat splits coordinates into nullable query arguments; ST_MakePoint of
// NULLs stores a NULL point.
func lngLat(coords []float64) (lng, lat *float64) {
	if len(coords) != 2 {
		return nil, nil
	}
	return &coords[0], &coords[1]
}

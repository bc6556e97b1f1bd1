package venues

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Venue is the aggregate root. Hours and comments live inside it and are
// persisted together with it as a single record.
type Venue struct {
	ID           uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Name         string    `json:"name" validate:"required,max=200"`
	Address      string    `json:"address" validate:"max=255"`
	Rating       float64   `json:"rating" validate:"gte=0,lte=5"`
	FoodAndDrink []string  `json:"foodAndDrink" validate:"max=100"`
	Coordinates  []float64 `json:"coordinates,omitempty" validate:"omitempty,lnglat"` // [longitude, latitude]
	Hours        []Hour    `json:"hours" validate:"dive"`
	Comments     []Comment `json:"comments" validate:"dive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Hour is an opening-hours entry embedded in a venue.
type Hour struct {
	ID       uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Days     string    `json:"days" validate:"required,max=100"`
	Open     string    `json:"open,omitempty" validate:"max=50"`
	Close    string    `json:"close,omitempty" validate:"max=50"`
	IsClosed bool      `json:"isClosed"`
}

// Comment is a visitor review embedded in a venue.
type Comment struct {
	ID     uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Author string    `json:"author" validate:"required,max=100"`
	Rating float64   `json:"rating" validate:"gte=0,lte=5"`
	Text   string    `json:"text" validate:"required,max=2000"`
	Date   time.Time `json:"date"`
}

// VenueInput carries the fields accepted when a venue is created. Initial
// hours and comments are optional and get fresh identifiers.
type VenueInput struct {
	Name         string         `json:"name"`
	Address      string         `json:"address"`
	Rating       *float64       `json:"rating"`
	FoodAndDrink []string       `json:"foodAndDrink"`
	Coordinates  []float64      `json:"coordinates"`
	Hours        []HourInput    `json:"hours"`
	Comments     []CommentInput `json:"comments"`
}

// VenuePatch holds a partial update. Nil fields are left untouched.
type VenuePatch struct {
	Name         *string    `json:"name"`
	Address      *string    `json:"address"`
	Rating       *float64   `json:"rating"`
	FoodAndDrink *[]string  `json:"foodAndDrink"`
	Coordinates  *[]float64 `json:"coordinates"`
}

type HourInput struct {
	Days     string `json:"days"`
	Open     string `json:"open"`
	Close    string `json:"close"`
	IsClosed bool   `json:"isClosed"`
}

type HourPatch struct {
	Days     *string `json:"days"`
	Open     *string `json:"open"`
	Close    *string `json:"close"`
	IsClosed *bool   `json:"isClosed"`
}

type CommentInput struct {
	Author string     `json:"author"`
	Rating *float64   `json:"rating"`
	Text   string     `json:"text"`
	Date   *time.Time `json:"date"`
}

type CommentPatch struct {
	Author *string  `json:"author"`
	Rating *float64 `json:"rating"`
	Text   *string  `json:"text"`
}

// Store persists whole venue documents. Every write replaces the full
// aggregate in one statement, so a venue and its embedded items are always
// stored consistently. Implementations return ErrVenueNotFound for unknown
// ids and wrap backend failures in *StorageError.
type Store interface {
	Insert(ctx context.Context, venue *Venue) error
	Get(ctx context.Context, id uuid.UUID) (*Venue, error)
	List(ctx context.Context) ([]Venue, error)
	Replace(ctx context.Context, venue *Venue) error
	Delete(ctx context.Context, id uuid.UUID) error
	Ping(ctx context.Context) error
}

// normalize replaces nil slices so that empty sequences encode as [] rather
// than null.
func (v *Venue) normalize() {
	if v.FoodAndDrink == nil {
		v.FoodAndDrink = []string{}
	}
	if v.Hours == nil {
		v.Hours = []Hour{}
	}
	if v.Comments == nil {
		v.Comments = []Comment{}
	}
}

// clone returns a deep copy of the venue.
func (v *Venue) clone() *Venue {
	c := *v
	c.FoodAndDrink = append([]string{}, v.FoodAndDrink...)
	if v.Coordinates != nil {
		c.Coordinates = append([]float64{}, v.Coordinates...)
	}
	c.Hours = append([]Hour{}, v.Hours...)
	c.Comments = append([]Comment{}, v.Comments...)
	return &c
}

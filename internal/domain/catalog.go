package domain

import (
	"context"
	"time"
)

// Country and Genre carry json tags because movie list queries aggregate
// them into JSON arrays that pgx decodes directly into these structs.

type Country struct {
	ID   int           `json:"id"`
	Name LocalizedText `json:"name"`
}

type Genre struct {
	ID   int           `json:"id"`
	Name LocalizedText `json:"name"`
}

// Person is a director or an actor; the two live in separate tables with
// identical shape.
type Person struct {
	ID          int
	Name        LocalizedText
	Bio         LocalizedText
	Born        time.Time
	PortraitUrl string
}

type CountryRepository interface {
	GetAll(ctx context.Context) ([]Country, error)
	GetById(ctx context.Context, id int) (*Country, error)
}

type GenreRepository interface {
	GetAll(ctx context.Context) ([]Genre, error)
	GetById(ctx context.Context, id int) (*Genre, error)
}

type PersonRepository interface {
	GetAll(ctx context.Context) ([]Person, error)
	GetById(ctx context.Context, id int) (*Person, error)
}

package domain

import (
	"context"
	"time"
)

// MovieStatus gates detail-view visibility. Movies marked MovieStatusHost
// are only served to users with elevated standing.
type MovieStatus string

const (
	MovieStatusHost  MovieStatus = "host"
	MovieStatusGuest MovieStatus = "guest"
)

func (s MovieStatus) Valid() bool {
	return s == MovieStatusHost || s == MovieStatusGuest
}

// Quality is the vertical resolution variant a movie is available in.
type Quality string

const (
	Quality144  Quality = "144"
	Quality360  Quality = "360"
	Quality480  Quality = "480"
	Quality720  Quality = "720"
	Quality1080 Quality = "1080"
)

func (q Quality) Valid() bool {
	switch q {
	case Quality144, Quality360, Quality480, Quality720, Quality1080:
		return true
	}

	return false
}

type Movie struct {
	ID          int
	Name        LocalizedText
	Description LocalizedText
	ReleaseDate time.Time
	Duration    int
	TrailerUrl  string
	PosterUrl   string
	Status      MovieStatus
	Quality     Quality
	Countries   []Country
	Genres      []Genre
	Directors   []Person
	Actors      []Person
	Tracks      []LanguageTrack
	Previews    []PreviewImage
	CreatedAt   time.Time
	Version     int
}

// LanguageTrack is a per-language video variant owned by exactly one movie
// and cascade-deleted with it.
type LanguageTrack struct {
	ID       int
	MovieID  int
	Language LocalizedText
	VideoUrl string
}

// PreviewImage is a still frame owned by exactly one movie.
type PreviewImage struct {
	ID       int
	MovieID  int
	ImageUrl string
}

type MovieFilters struct {
	Page      int
	PageSize  int
	Term      string
	Sort      string
	YearFrom  int
	YearTo    int
	GenreID   int
	CountryID int
}

func (f MovieFilters) SortDescending() bool {
	return len(f.Sort) > 0 && f.Sort[0] == '-'
}

func (f MovieFilters) SortField() string {
	if f.SortDescending() {
		return f.Sort[1:]
	}

	return f.Sort
}

func (f MovieFilters) Limit() int {
	return f.PageSize
}

func (f MovieFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type MovieRepository interface {
	// GetAll returns a page of movie summaries (name, poster, year,
	// countries, genres, status populated). A movie matching several
	// qualifying genres or countries appears exactly once.
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, *Metadata, error)
	// GetById returns the full movie with all associations, or
	// ErrRecordNotFound.
	GetById(ctx context.Context, id int) (*Movie, error)
	ListByCountry(ctx context.Context, countryID int) ([]*Movie, error)
	ListByGenre(ctx context.Context, genreID int) ([]*Movie, error)
	ListByDirector(ctx context.Context, directorID int) ([]*Movie, error)
	ListByActor(ctx context.Context, actorID int) ([]*Movie, error)
}

package domain

import (
	"context"
	"time"
)

// Rating is a score with free text attached to a movie by a user. A rating
// may reference a parent rating on the same movie, forming a reply thread.
// The parent must have a strictly earlier creation timestamp, which makes
// cycles impossible by construction.
type Rating struct {
	ID        int
	MovieID   int
	UserID    int
	ParentID  *int
	Score     int
	Text      string
	CreatedAt time.Time

	// UserFirstName is the only piece of the rater's profile exposed in
	// assembled views.
	UserFirstName string
}

// RatingSummary is the recomputed-on-demand aggregate over all rating rows
// of a movie, replies included.
type RatingSummary struct {
	Average float64
	Count   int
}

type RatingRepository interface {
	// ListByMovie returns all ratings of a movie ordered by creation time
	// ascending, with the rater's first name joined in.
	ListByMovie(ctx context.Context, movieID int) ([]*Rating, error)
	// Create persists the rating. It fails with ErrRecordNotFound when the
	// movie or the parent rating does not exist, and with
	// ErrParentRatingMismatch when the parent is attached to another movie
	// or does not predate the new rating.
	Create(ctx context.Context, rating *Rating) error
}

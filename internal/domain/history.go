package domain

import (
	"context"
	"time"
)

// History is one entry of a user's ordered viewing log.
type History struct {
	ID       int
	UserID   int
	MovieID  int
	ViewedAt time.Time
	Movie    *Movie
}

type HistoryRepository interface {
	Record(ctx context.Context, userID, movieID int) error
	// ListByUser returns history entries newest first, each with the movie
	// summary populated.
	ListByUser(ctx context.Context, userID int) ([]*History, error)
}

package domain

import "context"

// Favorites form a single per-user collection realized as a join table; the
// repository hides the collection-handle row.
type FavoriteRepository interface {
	// ListMovies returns the user's favorite movies as summaries, most
	// recently added first.
	ListMovies(ctx context.Context, userID int) ([]*Movie, error)
	// Add puts the movie into the user's favorites. Adding a movie that is
	// already present is a no-op. Unknown movies fail with
	// ErrRecordNotFound.
	Add(ctx context.Context, userID, movieID int) error
	// Remove fails with ErrRecordNotFound when the movie was not in the
	// user's favorites.
	Remove(ctx context.Context, userID, movieID int) error
}

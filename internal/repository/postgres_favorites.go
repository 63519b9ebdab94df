package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bekbolotov/movie-catalog-api/internal/domain"
)

type PostgresFavoriteRepository struct {
	db *pgxpool.Pool
}

func NewPostgresFavoriteRepository(db *pgxpool.Pool) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{
		db: db,
	}
}

func (p *PostgresFavoriteRepository) ListMovies(ctx context.Context, userID int) ([]*domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s
		FROM movies m
		JOIN favorite_movies fm ON fm.movie_id = m.id
		WHERE fm.user_id = $1
		ORDER BY fm.created_at DESC, m.id`, movieSummaryColumns)

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Name,
			&movie.PosterUrl,
			&movie.ReleaseDate,
			&movie.Status,
			&movie.Countries,
			&movie.Genres,
		)
		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	return movies, rows.Err()
}

func (p *PostgresFavoriteRepository) Add(ctx context.Context, userID, movieID int) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// The collection-handle row is created lazily on first add.
	_, err = tx.Exec(ctx,
		`INSERT INTO favorites (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO favorite_movies (user_id, movie_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, movieID)
	if err != nil {
		return mapForeignKeyToNotFound(err)
	}

	return tx.Commit(ctx)
}

func (p *PostgresFavoriteRepository) Remove(ctx context.Context, userID, movieID int) error {
	tag, err := p.db.Exec(ctx,
		`DELETE FROM favorite_movies WHERE user_id = $1 AND movie_id = $2`, userID, movieID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

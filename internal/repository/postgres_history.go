package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bekbolotov/movie-catalog-api/internal/domain"
)

type PostgresHistoryRepository struct {
	db *pgxpool.Pool
}

func NewPostgresHistoryRepository(db *pgxpool.Pool) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{
		db: db,
	}
}

func (p *PostgresHistoryRepository) Record(ctx context.Context, userID, movieID int) error {
	_, err := p.db.Exec(ctx,
		`INSERT INTO histories (user_id, movie_id) VALUES ($1, $2)`, userID, movieID)
	if err != nil {
		return mapForeignKeyToNotFound(err)
	}

	return nil
}

func (p *PostgresHistoryRepository) ListByUser(ctx context.Context, userID int) ([]*domain.History, error) {
	query := fmt.Sprintf(`SELECT h.id, h.user_id, h.movie_id, h.viewed_at, %s
		FROM histories h
		JOIN movies m ON m.id = h.movie_id
		WHERE h.user_id = $1
		ORDER BY h.viewed_at DESC, h.id DESC`, movieSummaryColumns)

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*domain.History{}

	for rows.Next() {
		var entry domain.History
		var movie domain.Movie

		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.MovieID,
			&entry.ViewedAt,
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

		entry.Movie = &movie
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

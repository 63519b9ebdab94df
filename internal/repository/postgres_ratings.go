package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bekbolotov/movie-catalog-api/internal/domain"
)

type PostgresRatingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRatingRepository(db *pgxpool.Pool) *PostgresRatingRepository {
	return &PostgresRatingRepository{
		db: db,
	}
}

func (p *PostgresRatingRepository) ListByMovie(ctx context.Context, movieID int) ([]*domain.Rating, error) {
	query := `SELECT r.id, r.movie_id, r.user_id, r.parent_id, r.score, r.body, r.created_at, u.first_name
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.movie_id = $1
		ORDER BY r.created_at ASC, r.id ASC`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := []*domain.Rating{}

	for rows.Next() {
		var rating domain.Rating

		err := rows.Scan(
			&rating.ID,
			&rating.MovieID,
			&rating.UserID,
			&rating.ParentID,
			&rating.Score,
			&rating.Text,
			&rating.CreatedAt,
			&rating.UserFirstName,
		)
		if err != nil {
			return nil, err
		}

		ratings = append(ratings, &rating)
	}

	return ratings, rows.Err()
}

func (p *PostgresRatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	if rating.ParentID == nil {
		return p.createTopLevel(ctx, rating)
	}

	return p.createReply(ctx, rating)
}

func (p *PostgresRatingRepository) createTopLevel(ctx context.Context, rating *domain.Rating) error {
	query := `INSERT INTO ratings (movie_id, user_id, score, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := p.db.QueryRow(ctx, query,
		rating.MovieID,
		rating.UserID,
		rating.Score,
		rating.Text,
	).Scan(&rating.ID, &rating.CreatedAt)

	return mapForeignKeyToNotFound(err)
}

// createReply inserts through a guarded SELECT so the parent checks (same
// movie, strictly earlier creation time) and the insert are one statement,
// leaving no window for the parent to change in between.
func (p *PostgresRatingRepository) createReply(ctx context.Context, rating *domain.Rating) error {
	query := `INSERT INTO ratings (movie_id, user_id, parent_id, score, body)
		SELECT $1, $2, parent.id, $3, $4
		FROM ratings parent
		WHERE parent.id = $5 AND parent.movie_id = $1 AND parent.created_at < now()
		RETURNING id, created_at`

	err := p.db.QueryRow(ctx, query,
		rating.MovieID,
		rating.UserID,
		rating.Score,
		rating.Text,
		*rating.ParentID,
	).Scan(&rating.ID, &rating.CreatedAt)
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		var parentExists bool

		checkErr := p.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM ratings WHERE id = $1)`, *rating.ParentID,
		).Scan(&parentExists)
		if checkErr != nil {
			return checkErr
		}

		if parentExists {
			return domain.ErrParentRatingMismatch
		}

		return domain.ErrRecordNotFound
	}

	return mapForeignKeyToNotFound(err)
}

func mapForeignKeyToNotFound(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return domain.ErrRecordNotFound
	}

	return err
}

package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bekbolotov/movie-catalog-api/internal/domain"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (p *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (username, email, password_hash, first_name, last_name, age, phone, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, activated, created_at, version`

	err := p.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.Password.Hash,
		user.FirstName,
		user.LastName,
		user.Age,
		user.Phone,
		user.AvatarUrl,
	).Scan(&user.ID, &user.Status, &user.Activated, &user.CreatedAt, &user.Version)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return domain.ErrDuplicateEmail
			}

			return domain.ErrDuplicateUsername
		}

		return err
	}

	return nil
}

func (p *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, first_name, last_name,
			age, phone, avatar_url, status, activated, created_at, version
		FROM users
		WHERE username = $1`

	return p.queryUser(ctx, query, username)
}

func (p *PostgresUserRepository) GetById(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, first_name, last_name,
			age, phone, avatar_url, status, activated, created_at, version
		FROM users
		WHERE id = $1`

	return p.queryUser(ctx, query, id)
}

func (p *PostgresUserRepository) queryUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User

	err := p.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password.Hash,
		&user.FirstName,
		&user.LastName,
		&user.Age,
		&user.Phone,
		&user.AvatarUrl,
		&user.Status,
		&user.Activated,
		&user.CreatedAt,
		&user.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &user, nil
}

func (p *PostgresUserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users
		SET first_name = $1, last_name = $2, age = $3, phone = $4, avatar_url = $5, version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version`

	err := p.db.QueryRow(ctx, query,
		user.FirstName,
		user.LastName,
		user.Age,
		user.Phone,
		user.AvatarUrl,
		user.ID,
		user.Version,
	).Scan(&user.Version)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEditConflict
		}

		return err
	}

	return nil
}

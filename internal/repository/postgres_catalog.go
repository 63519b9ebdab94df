package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bekbolotov/movie-catalog-api/internal/domain"
)

type PostgresCountryRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCountryRepository(db *pgxpool.Pool) *PostgresCountryRepository {
	return &PostgresCountryRepository{
		db: db,
	}
}

func (p *PostgresCountryRepository) GetAll(ctx context.Context) ([]domain.Country, error) {
	rows, err := p.db.Query(ctx, `SELECT id, name FROM countries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := []domain.Country{}

	for rows.Next() {
		var country domain.Country

		err := rows.Scan(&country.ID, &country.Name)
		if err != nil {
			return nil, err
		}

		countries = append(countries, country)
	}

	return countries, rows.Err()
}

func (p *PostgresCountryRepository) GetById(ctx context.Context, id int) (*domain.Country, error) {
	var country domain.Country

	err := p.db.QueryRow(ctx, `SELECT id, name FROM countries WHERE id = $1`, id).
		Scan(&country.ID, &country.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &country, nil
}

type PostgresGenreRepository struct {
	db *pgxpool.Pool
}

func NewPostgresGenreRepository(db *pgxpool.Pool) *PostgresGenreRepository {
	return &PostgresGenreRepository{
		db: db,
	}
}

func (p *PostgresGenreRepository) GetAll(ctx context.Context) ([]domain.Genre, error) {
	rows, err := p.db.Query(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []domain.Genre{}

	for rows.Next() {
		var genre domain.Genre

		err := rows.Scan(&genre.ID, &genre.Name)
		if err != nil {
			return nil, err
		}

		genres = append(genres, genre)
	}

	return genres, rows.Err()
}

func (p *PostgresGenreRepository) GetById(ctx context.Context, id int) (*domain.Genre, error) {
	var genre domain.Genre

	err := p.db.QueryRow(ctx, `SELECT id, name FROM genres WHERE id = $1`, id).
		Scan(&genre.ID, &genre.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &genre, nil
}

// PostgresPersonRepository serves both directors and actors; the two tables
// share one shape.
type PostgresPersonRepository struct {
	db    *pgxpool.Pool
	table string
}

func NewPostgresDirectorRepository(db *pgxpool.Pool) *PostgresPersonRepository {
	return &PostgresPersonRepository{db: db, table: "directors"}
}

func NewPostgresActorRepository(db *pgxpool.Pool) *PostgresPersonRepository {
	return &PostgresPersonRepository{db: db, table: "actors"}
}

func (p *PostgresPersonRepository) GetAll(ctx context.Context) ([]domain.Person, error) {
	query := fmt.Sprintf(`SELECT id, name, bio, born, portrait_url FROM %s ORDER BY id`, p.table)

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := []domain.Person{}

	for rows.Next() {
		var person domain.Person

		err := rows.Scan(&person.ID, &person.Name, &person.Bio, &person.Born, &person.PortraitUrl)
		if err != nil {
			return nil, err
		}

		people = append(people, person)
	}

	return people, rows.Err()
}

func (p *PostgresPersonRepository) GetById(ctx context.Context, id int) (*domain.Person, error) {
	query := fmt.Sprintf(`SELECT id, name, bio, born, portrait_url FROM %s WHERE id = $1`, p.table)

	var person domain.Person

	err := p.db.QueryRow(ctx, query, id).
		Scan(&person.ID, &person.Name, &person.Bio, &person.Born, &person.PortraitUrl)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &person, nil
}

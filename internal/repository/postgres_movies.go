package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bekbolotov/movie-catalog-api/internal/domain"
)

// movieSummaryColumns aggregates countries and genres into JSON arrays so a
// summary page is produced by a single query with one row per movie,
// whatever the association cardinality.
const movieSummaryColumns = `m.id, m.name, m.poster_url, m.release_date, m.status,
	(SELECT coalesce(json_agg(json_build_object('id', c.id, 'name', c.name) ORDER BY c.id), '[]'::json)
		FROM countries c
		JOIN movie_countries mc ON mc.country_id = c.id
		WHERE mc.movie_id = m.id),
	(SELECT coalesce(json_agg(json_build_object('id', g.id, 'name', g.name) ORDER BY g.id), '[]'::json)
		FROM genres g
		JOIN movie_genres mg ON mg.genre_id = g.id
		WHERE mg.movie_id = m.id)`

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	query := fmt.Sprintf(`SELECT count(*) OVER(), %s
		FROM movies m
		WHERE ($1 = '' OR EXISTS (
				SELECT 1 FROM jsonb_each_text(m.name) n WHERE n.value ILIKE '%%' || $1 || '%%'))
			AND ($2 = 0 OR extract(year FROM m.release_date) >= $2)
			AND ($3 = 0 OR extract(year FROM m.release_date) <= $3)
			AND ($4 = 0 OR EXISTS (
				SELECT 1 FROM movie_genres fg WHERE fg.movie_id = m.id AND fg.genre_id = $4))
			AND ($5 = 0 OR EXISTS (
				SELECT 1 FROM movie_countries fc WHERE fc.movie_id = m.id AND fc.country_id = $5))
		ORDER BY %s %s, m.id ASC
		LIMIT $6 OFFSET $7`,
		movieSummaryColumns, sortColumn(filters), sortDirection(filters))

	rows, err := p.db.Query(ctx, query,
		filters.Term,
		filters.YearFrom,
		filters.YearTo,
		filters.GenreID,
		filters.CountryID,
		filters.Limit(),
		filters.Offset(),
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&totalRecords,
			&movie.ID,
			&movie.Name,
			&movie.PosterUrl,
			&movie.ReleaseDate,
			&movie.Status,
			&movie.Countries,
			&movie.Genres,
		)
		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return movies, metadata, nil
}

// sortColumn whitelists sortable fields; anything else falls back to id so
// user input never reaches the ORDER BY clause verbatim.
func sortColumn(filters domain.MovieFilters) string {
	switch filters.SortField() {
	case "year":
		return "m.release_date"
	default:
		return "m.id"
	}
}

func sortDirection(filters domain.MovieFilters) string {
	if filters.SortDescending() {
		return "DESC"
	}

	return "ASC"
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT id, name, description, release_date, duration, trailer_url,
			poster_url, status, quality, created_at, version
		FROM movies
		WHERE id = $1`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Name,
		&movie.Description,
		&movie.ReleaseDate,
		&movie.Duration,
		&movie.TrailerUrl,
		&movie.PosterUrl,
		&movie.Status,
		&movie.Quality,
		&movie.CreatedAt,
		&movie.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	err = p.loadAssociations(ctx, &movie)
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) loadAssociations(ctx context.Context, movie *domain.Movie) error {
	err := p.db.QueryRow(ctx, `SELECT
			(SELECT coalesce(json_agg(json_build_object('id', c.id, 'name', c.name) ORDER BY c.id), '[]'::json)
				FROM countries c JOIN movie_countries mc ON mc.country_id = c.id WHERE mc.movie_id = $1),
			(SELECT coalesce(json_agg(json_build_object('id', g.id, 'name', g.name) ORDER BY g.id), '[]'::json)
				FROM genres g JOIN movie_genres mg ON mg.genre_id = g.id WHERE mg.movie_id = $1)`,
		movie.ID).Scan(&movie.Countries, &movie.Genres)
	if err != nil {
		return err
	}

	movie.Directors, err = p.queryPeople(ctx, "directors", "movie_directors", "director_id", movie.ID)
	if err != nil {
		return err
	}

	movie.Actors, err = p.queryPeople(ctx, "actors", "movie_actors", "actor_id", movie.ID)
	if err != nil {
		return err
	}

	rows, err := p.db.Query(ctx,
		`SELECT id, movie_id, language, video_url
		FROM movie_language_tracks
		WHERE movie_id = $1
		ORDER BY id`, movie.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var track domain.LanguageTrack

		err := rows.Scan(&track.ID, &track.MovieID, &track.Language, &track.VideoUrl)
		if err != nil {
			return err
		}

		movie.Tracks = append(movie.Tracks, track)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	previewRows, err := p.db.Query(ctx,
		`SELECT id, movie_id, image_url
		FROM movie_preview_images
		WHERE movie_id = $1
		ORDER BY id`, movie.ID)
	if err != nil {
		return err
	}
	defer previewRows.Close()

	for previewRows.Next() {
		var preview domain.PreviewImage

		err := previewRows.Scan(&preview.ID, &preview.MovieID, &preview.ImageUrl)
		if err != nil {
			return err
		}

		movie.Previews = append(movie.Previews, preview)
	}

	return previewRows.Err()
}

func (p *PostgresMovieRepository) queryPeople(ctx context.Context, table, joinTable, joinColumn string, movieID int) ([]domain.Person, error) {
	query := fmt.Sprintf(`SELECT p.id, p.name, p.bio, p.born, p.portrait_url
		FROM %s p
		JOIN %s j ON j.%s = p.id
		WHERE j.movie_id = $1
		ORDER BY p.id`, table, joinTable, joinColumn)

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []domain.Person

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

func (p *PostgresMovieRepository) ListByCountry(ctx context.Context, countryID int) ([]*domain.Movie, error) {
	return p.listByAssociation(ctx, "movie_countries", "country_id", countryID)
}

func (p *PostgresMovieRepository) ListByGenre(ctx context.Context, genreID int) ([]*domain.Movie, error) {
	return p.listByAssociation(ctx, "movie_genres", "genre_id", genreID)
}

func (p *PostgresMovieRepository) ListByDirector(ctx context.Context, directorID int) ([]*domain.Movie, error) {
	return p.listByAssociation(ctx, "movie_directors", "director_id", directorID)
}

func (p *PostgresMovieRepository) ListByActor(ctx context.Context, actorID int) ([]*domain.Movie, error) {
	return p.listByAssociation(ctx, "movie_actors", "actor_id", actorID)
}

func (p *PostgresMovieRepository) listByAssociation(ctx context.Context, joinTable, column string, id int) ([]*domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s
		FROM movies m
		WHERE EXISTS (SELECT 1 FROM %s j WHERE j.movie_id = m.id AND j.%s = $1)
		ORDER BY m.id`, movieSummaryColumns, joinTable, column)

	rows, err := p.db.Query(ctx, query, id)
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

package mocks

import (
	"context"

	"github.com/bekbolotov/movie-catalog-api/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc         func(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error)
	GetByIdFunc        func(ctx context.Context, id int) (*domain.Movie, error)
	ListByCountryFunc  func(ctx context.Context, countryID int) ([]*domain.Movie, error)
	ListByGenreFunc    func(ctx context.Context, genreID int) ([]*domain.Movie, error)
	ListByDirectorFunc func(ctx context.Context, directorID int) ([]*domain.Movie, error)
	ListByActorFunc    func(ctx context.Context, actorID int) ([]*domain.Movie, error)
}

func (m *MockMovieRepo) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) ListByCountry(ctx context.Context, countryID int) ([]*domain.Movie, error) {
	return m.ListByCountryFunc(ctx, countryID)
}

func (m *MockMovieRepo) ListByGenre(ctx context.Context, genreID int) ([]*domain.Movie, error) {
	return m.ListByGenreFunc(ctx, genreID)
}

func (m *MockMovieRepo) ListByDirector(ctx context.Context, directorID int) ([]*domain.Movie, error) {
	return m.ListByDirectorFunc(ctx, directorID)
}

func (m *MockMovieRepo) ListByActor(ctx context.Context, actorID int) ([]*domain.Movie, error) {
	return m.ListByActorFunc(ctx, actorID)
}

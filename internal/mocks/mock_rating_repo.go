package mocks

import (
	"context"

	"github.com/bekbolotov/movie-catalog-api/internal/domain"
)

type MockRatingRepo struct {
	domain.RatingRepository
	ListByMovieFunc func(ctx context.Context, movieID int) ([]*domain.Rating, error)
	CreateFunc      func(ctx context.Context, rating *domain.Rating) error
}

func (m *MockRatingRepo) ListByMovie(ctx context.Context, movieID int) ([]*domain.Rating, error) {
	return m.ListByMovieFunc(ctx, movieID)
}

func (m *MockRatingRepo) Create(ctx context.Context, rating *domain.Rating) error {
	return m.CreateFunc(ctx, rating)
}

type MockFavoriteRepo struct {
	domain.FavoriteRepository
	ListMoviesFunc func(ctx context.Context, userID int) ([]*domain.Movie, error)
	AddFunc        func(ctx context.Context, userID, movieID int) error
	RemoveFunc     func(ctx context.Context, userID, movieID int) error
}

func (m *MockFavoriteRepo) ListMovies(ctx context.Context, userID int) ([]*domain.Movie, error) {
	return m.ListMoviesFunc(ctx, userID)
}

func (m *MockFavoriteRepo) Add(ctx context.Context, userID, movieID int) error {
	return m.AddFunc(ctx, userID, movieID)
}

func (m *MockFavoriteRepo) Remove(ctx context.Context, userID, movieID int) error {
	return m.RemoveFunc(ctx, userID, movieID)
}

type MockHistoryRepo struct {
	domain.HistoryRepository
	RecordFunc     func(ctx context.Context, userID, movieID int) error
	ListByUserFunc func(ctx context.Context, userID int) ([]*domain.History, error)
}

func (m *MockHistoryRepo) Record(ctx context.Context, userID, movieID int) error {
	return m.RecordFunc(ctx, userID, movieID)
}

func (m *MockHistoryRepo) ListByUser(ctx context.Context, userID int) ([]*domain.History, error) {
	return m.ListByUserFunc(ctx, userID)
}

package mocks

import (
	"context"

	"github.com/bekbolotov/movie-catalog-api/internal/domain"
)

type MockCountryRepo struct {
	domain.CountryRepository
	GetAllFunc  func(ctx context.Context) ([]domain.Country, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Country, error)
}

func (m *MockCountryRepo) GetAll(ctx context.Context) ([]domain.Country, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockCountryRepo) GetById(ctx context.Context, id int) (*domain.Country, error) {
	return m.GetByIdFunc(ctx, id)
}

type MockGenreRepo struct {
	domain.GenreRepository
	GetAllFunc  func(ctx context.Context) ([]domain.Genre, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Genre, error)
}

func (m *MockGenreRepo) GetAll(ctx context.Context) ([]domain.Genre, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockGenreRepo) GetById(ctx context.Context, id int) (*domain.Genre, error) {
	return m.GetByIdFunc(ctx, id)
}

type MockPersonRepo struct {
	domain.PersonRepository
	GetAllFunc  func(ctx context.Context) ([]domain.Person, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Person, error)
}

func (m *MockPersonRepo) GetAll(ctx context.Context) ([]domain.Person, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockPersonRepo) GetById(ctx context.Context, id int) (*domain.Person, error) {
	return m.GetByIdFunc(ctx, id)
}

package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/bekbolotov/movie-catalog-api/api"
	"github.com/bekbolotov/movie-catalog-api/internal/domain"
	"github.com/bekbolotov/movie-catalog-api/internal/i18n"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "id"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	params, err := parseGetMoviesParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := toMovieFilters(params)

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	locale := i18n.FromRequest(r)

	resp := api.MovieListResponse{
		Movies:   toMovieSummaries(movies, locale),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieId, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	identity := app.contextGetIdentity(r)

	// Restricted movies are served to elevated users only. Anonymous
	// callers are asked to authenticate rather than told the movie is
	// off-limits.
	if movie.Status == domain.MovieStatusHost {
		if identity == nil {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		if identity.Role != string(domain.UserStatusPro) {
			app.forbiddenResponse(w, r)
			return
		}
	}

	ratings, err := app.ratingRepo.ListByMovie(r.Context(), movie.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if identity != nil {
		go func(ctx context.Context, userID, movieID int) {
			defer func() {
				if err := recover(); err != nil {
					app.logger.Error("panic occurred during history recording", "panic", err)
				}
			}()

			// Viewing history is best effort and never blocks the response.
			err := app.historyRepo.Record(context.WithoutCancel(ctx), userID, movieID)
			if err != nil {
				app.logger.Error("failed to record view history", "error", err, "userId", userID, "movieId", movieID)
			}
		}(r.Context(), identity.UserID, movie.ID)
	}

	resp := toMovieDetail(movie, ratings, i18n.FromRequest(r))

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func parseGetMoviesParams(r *http.Request) (api.GetMoviesParams, error) {
	values := r.URL.Query()
	params := api.GetMoviesParams{}

	var err error

	if params.Page, err = readQueryInt(values, "page"); err != nil {
		return params, err
	}
	if params.PageSize, err = readQueryInt(values, "pageSize"); err != nil {
		return params, err
	}
	if params.YearFrom, err = readQueryInt(values, "yearFrom"); err != nil {
		return params, err
	}
	if params.YearTo, err = readQueryInt(values, "yearTo"); err != nil {
		return params, err
	}
	if params.Genre, err = readQueryInt(values, "genre"); err != nil {
		return params, err
	}
	if params.Country, err = readQueryInt(values, "country"); err != nil {
		return params, err
	}

	params.Term = readQueryString(values, "term")
	params.Sort = readQueryString(values, "sort")

	return params, nil
}

func toMovieFilters(params api.GetMoviesParams) domain.MovieFilters {
	filters := domain.MovieFilters{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Sort:     DefaultSort,
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Sort != nil {
		filters.Sort = *params.Sort
	}
	if params.Term != nil {
		filters.Term = *params.Term
	}
	if params.YearFrom != nil {
		filters.YearFrom = *params.YearFrom
	}
	if params.YearTo != nil {
		filters.YearTo = *params.YearTo
	}
	if params.Genre != nil {
		filters.GenreID = *params.Genre
	}
	if params.Country != nil {
		filters.CountryID = *params.Country
	}

	return filters
}

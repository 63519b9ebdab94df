package app

import (
	"errors"
	"net/http"

	"github.com/bekbolotov/movie-catalog-api/api"
	"github.com/bekbolotov/movie-catalog-api/internal/domain"
	"github.com/bekbolotov/movie-catalog-api/internal/i18n"
)

func (app *Application) GetFavorites(w http.ResponseWriter, r *http.Request) {
	identity := app.contextGetIdentity(r)

	movies, err := app.favoriteRepo.ListMovies(r.Context(), identity.UserID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.FavoriteListResponse{
		Movies: toMovieSummaries(movies, i18n.FromRequest(r)),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) AddFavorite(w http.ResponseWriter, r *http.Request) {
	identity := app.contextGetIdentity(r)

	movieId, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.favoriteRepo.Add(r.Context(), identity.UserID, movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	identity := app.contextGetIdentity(r)

	movieId, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.favoriteRepo.Remove(r.Context(), identity.UserID, movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

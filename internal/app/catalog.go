package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/bekbolotov/movie-catalog-api/api"
	"github.com/bekbolotov/movie-catalog-api/internal/domain"
	"github.com/bekbolotov/movie-catalog-api/internal/i18n"
)

func (app *Application) GetCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := app.countryRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toCountryRefs(countries, i18n.FromRequest(r))

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCountry(w http.ResponseWriter, r *http.Request) {
	countryId, err := app.readIDParam(r, "countryId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	country, err := app.countryRepo.GetById(r.Context(), countryId)
	if err != nil {
		app.catalogLookupError(w, r, err)
		return
	}

	movies, err := app.movieRepo.ListByCountry(r.Context(), country.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	locale := i18n.FromRequest(r)

	resp := api.CountryDetail{
		Id:     country.ID,
		Name:   country.Name.Resolve(locale),
		Movies: toMovieSummaries(movies, locale),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := app.genreRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toGenreRefs(genres, i18n.FromRequest(r))

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetGenre(w http.ResponseWriter, r *http.Request) {
	genreId, err := app.readIDParam(r, "genreId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	genre, err := app.genreRepo.GetById(r.Context(), genreId)
	if err != nil {
		app.catalogLookupError(w, r, err)
		return
	}

	movies, err := app.movieRepo.ListByGenre(r.Context(), genre.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	locale := i18n.FromRequest(r)

	resp := api.GenreDetail{
		Id:     genre.ID,
		Name:   genre.Name.Resolve(locale),
		Movies: toMovieSummaries(movies, locale),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetDirectors(w http.ResponseWriter, r *http.Request) {
	app.listPeople(w, r, app.directorRepo)
}

func (app *Application) GetDirector(w http.ResponseWriter, r *http.Request) {
	app.getPerson(w, r, "directorId", app.directorRepo, app.movieRepo.ListByDirector)
}

func (app *Application) GetActors(w http.ResponseWriter, r *http.Request) {
	app.listPeople(w, r, app.actorRepo)
}

func (app *Application) GetActor(w http.ResponseWriter, r *http.Request) {
	app.getPerson(w, r, "actorId", app.actorRepo, app.movieRepo.ListByActor)
}

// Directors and actors share a shape, so their handlers share a body.
func (app *Application) listPeople(w http.ResponseWriter, r *http.Request, repo domain.PersonRepository) {
	people, err := repo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toPersonSummaries(people, i18n.FromRequest(r))

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) getPerson(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	repo domain.PersonRepository,
	listMovies func(context.Context, int) ([]*domain.Movie, error),
) {
	personId, err := app.readIDParam(r, paramName)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	person, err := repo.GetById(r.Context(), personId)
	if err != nil {
		app.catalogLookupError(w, r, err)
		return
	}

	movies, err := listMovies(r.Context(), person.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	locale := i18n.FromRequest(r)

	resp := api.PersonDetail{
		Id:          person.ID,
		Name:        person.Name.Resolve(locale),
		Bio:         person.Bio.Resolve(locale),
		Born:        person.Born.Format(releaseDateLayout),
		PortraitUrl: person.PortraitUrl,
		Movies:      toMovieSummaries(movies, locale),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) catalogLookupError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

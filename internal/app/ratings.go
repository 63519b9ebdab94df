package app

import (
	"errors"
	"net/http"

	"github.com/bekbolotov/movie-catalog-api/api"
	"github.com/bekbolotov/movie-catalog-api/internal/domain"
)

func (app *Application) CreateRating(w http.ResponseWriter, r *http.Request) {
	movieId, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.CreateRatingRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	identity := app.contextGetIdentity(r)

	rating := domain.Rating{
		MovieID:  movieId,
		UserID:   identity.UserID,
		ParentID: input.ParentId,
		Score:    input.Score,
		Text:     input.Text,
	}

	err = app.ratingRepo.Create(r.Context(), &rating)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrParentRatingMismatch):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.RatingResponse{
		Id:        rating.ID,
		Score:     rating.Score,
		Text:      rating.Text,
		CreatedAt: rating.CreatedAt.Format(ratingTimestampLayout),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

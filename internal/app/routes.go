package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.StripSlashes)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.authenticate)

	r.Get("/health", app.Healthcheck)

	r.Post("/register", app.RegisterUser)
	r.Post("/login", app.Login)
	r.Post("/logout", app.Logout)
	r.Post("/token/refresh", app.RefreshToken)

	r.Route("/movie", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Get("/{movieId}", app.GetMovie)
		r.With(app.requireAuthentication).Post("/{movieId}/ratings", app.CreateRating)
	})

	r.Route("/country", func(r chi.Router) {
		r.Get("/", app.GetCountries)
		r.Get("/{countryId}", app.GetCountry)
	})

	r.Route("/genre", func(r chi.Router) {
		r.Get("/", app.GetGenres)
		r.Get("/{genreId}", app.GetGenre)
	})

	r.Route("/director", func(r chi.Router) {
		r.Get("/", app.GetDirectors)
		r.Get("/{directorId}", app.GetDirector)
	})

	r.Route("/actor", func(r chi.Router) {
		r.Get("/", app.GetActors)
		r.Get("/{actorId}", app.GetActor)
	})

	r.With(app.requireAuthentication).Route("/users/me", func(r chi.Router) {
		r.Get("/", app.GetCurrentUser)
		r.Patch("/", app.UpdateUser)

		r.Get("/favorites", app.GetFavorites)
		r.Put("/favorites/{movieId}", app.AddFavorite)
		r.Delete("/favorites/{movieId}", app.RemoveFavorite)

		r.Get("/history", app.GetHistory)
	})

	return r
}

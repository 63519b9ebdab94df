package app

import (
	"net/http"

	"github.com/bekbolotov/movie-catalog-api/api"
)

func (app *Application) Healthcheck(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthcheckResponse{
		Status: "available",
		SystemInfo: api.SystemInfo{
			Version:     version,
			Environment: app.config.Env,
		},
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}

package app

import (
	"net/http"

	"github.com/bekbolotov/movie-catalog-api/api"
	"github.com/bekbolotov/movie-catalog-api/internal/i18n"
)

func (app *Application) GetHistory(w http.ResponseWriter, r *http.Request) {
	identity := app.contextGetIdentity(r)

	entries, err := app.historyRepo.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	locale := i18n.FromRequest(r)

	history := make([]api.HistoryEntry, len(entries))
	for i, entry := range entries {
		history[i] = api.HistoryEntry{
			Movie:    toMovieSummary(entry.Movie, locale),
			ViewedAt: entry.ViewedAt,
		}
	}

	resp := api.HistoryResponse{History: history}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

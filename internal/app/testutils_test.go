package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bekbolotov/movie-catalog-api/api"
	"github.com/bekbolotov/movie-catalog-api/internal/domain"
	"github.com/bekbolotov/movie-catalog-api/internal/mailer"
	"github.com/bekbolotov/movie-catalog-api/internal/mocks"
	"github.com/bekbolotov/movie-catalog-api/internal/token"
	"github.com/bekbolotov/movie-catalog-api/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config:       Config{Env: "test"},
		validator:    validator.NewValidator(),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		mailer:       &mailer.MockMailer{},
		tokens:       token.NewAuthority("test-secret", 30*time.Minute, 72*time.Hour, mocks.NewMemoryRevocationStore()),
		userRepo:     &mocks.MockUserRepo{},
		movieRepo:    &mocks.MockMovieRepo{},
		countryRepo:  &mocks.MockCountryRepo{},
		genreRepo:    &mocks.MockGenreRepo{},
		directorRepo: &mocks.MockPersonRepo{},
		actorRepo:    &mocks.MockPersonRepo{},
		ratingRepo:   &mocks.MockRatingRepo{},
		favoriteRepo: &mocks.MockFavoriteRepo{},
		historyRepo:  &mocks.MockHistoryRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// serve routes the request through the full middleware chain so URL
// parameters and authentication behave as in production.
func serve(t *testing.T, app *Application, method, url string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")

	for key, value := range headers {
		r.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	app.Routes().ServeHTTP(w, r)

	return w
}

func authHeader(t *testing.T, app *Application, user *domain.User) map[string]string {
	t.Helper()

	pair, err := app.tokens.IssuePair(user)
	if err != nil {
		t.Fatal(err)
	}

	return map[string]string{"Authorization": "Bearer " + pair.Access}
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}

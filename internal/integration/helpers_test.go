package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/bekbolotov/movie-catalog-api/api"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		cleanValue(m[k])
	}
}

func cleanValue(v any) {
	switch vv := v.(type) {
	case map[string]any:
		cleanMap(vv)
	case []any:
		for _, item := range vv {
			cleanValue(item)
		}
	}
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), `
		TRUNCATE users, countries, genres, directors, actors, movies,
			ratings, favorites, favorite_movies, histories
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

// registerUser creates an account through the public API so the password is
// hashed the same way production does it.
func registerUser(t testing.TB, app *TestApp, username, email, password string) {
	body := fmt.Sprintf(`{
		"username": %q,
		"email": %q,
		"password": %q,
		"firstName": "Ann",
		"lastName": "Smith",
		"age": 20
	}`, username, email, password)

	req, err := prepareRequest("POST", "/register", strings.NewReader(body), nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, "registration failed: %s", rec.Body.String())
}

func login(t testing.TB, app *TestApp, username, password string) api.LoginResponse {
	body := fmt.Sprintf(`{"username": %q, "password": %q}`, username, password)

	req, err := prepareRequest("POST", "/login", strings.NewReader(body), nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	var resp api.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return resp
}

func bearer(session api.LoginResponse) map[string]string {
	return map[string]string{"Authorization": "Bearer " + session.Access}
}

func promoteUser(t testing.TB, db *pgxpool.Pool, username string) {
	_, err := db.Exec(context.Background(),
		`UPDATE users SET status = 'pro' WHERE username = $1`, username)
	require.NoError(t, err)
}

func seedCountry(t testing.TB, db *pgxpool.Pool, names map[string]string) int {
	return seedNamedRow(t, db, "countries", names)
}

func seedGenre(t testing.TB, db *pgxpool.Pool, names map[string]string) int {
	return seedNamedRow(t, db, "genres", names)
}

func seedNamedRow(t testing.TB, db *pgxpool.Pool, table string, names map[string]string) int {
	nameJSON, err := json.Marshal(names)
	require.NoError(t, err)

	var id int
	err = db.QueryRow(context.Background(),
		fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) RETURNING id`, table), nameJSON).Scan(&id)
	require.NoError(t, err)

	return id
}

func seedPerson(t testing.TB, db *pgxpool.Pool, table string, names map[string]string) int {
	nameJSON, err := json.Marshal(names)
	require.NoError(t, err)

	var id int
	err = db.QueryRow(context.Background(),
		fmt.Sprintf(`INSERT INTO %s (name, bio, born) VALUES ($1, '{}', '1960-01-01') RETURNING id`, table),
		nameJSON).Scan(&id)
	require.NoError(t, err)

	return id
}

type movieSeed struct {
	Names       map[string]string
	ReleaseDate string
	Status      string
	CountryIDs  []int
	GenreIDs    []int
	DirectorIDs []int
	ActorIDs    []int
}

func seedMovie(t testing.TB, db *pgxpool.Pool, seed movieSeed) int {
	nameJSON, err := json.Marshal(seed.Names)
	require.NoError(t, err)

	if seed.Status == "" {
		seed.Status = "guest"
	}

	ctx := context.Background()

	var id int
	err = db.QueryRow(ctx, `
		INSERT INTO movies (name, description, release_date, duration, status, quality)
		VALUES ($1, '{}', $2, 100, $3, '1080')
		RETURNING id`, nameJSON, seed.ReleaseDate, seed.Status).Scan(&id)
	require.NoError(t, err)

	for table, pairs := range map[string]struct {
		column string
		ids    []int
	}{
		"movie_countries": {"country_id", seed.CountryIDs},
		"movie_genres":    {"genre_id", seed.GenreIDs},
		"movie_directors": {"director_id", seed.DirectorIDs},
		"movie_actors":    {"actor_id", seed.ActorIDs},
	} {
		for _, refID := range pairs.ids {
			_, err := db.Exec(ctx,
				fmt.Sprintf(`INSERT INTO %s (movie_id, %s) VALUES ($1, $2)`, table, pairs.column), id, refID)
			require.NoError(t, err)
		}
	}

	return id
}

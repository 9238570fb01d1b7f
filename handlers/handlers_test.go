package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviehub/database"
	"moviehub/repository"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	db       *database.DB
	movies   *repository.MovieRepository
	seasons  *repository.SeasonRepository
	contacts *repository.ContactMessageRepository
	router   *mux.Router
}

func setupTestApp(t *testing.T) (*testApp, func()) {
	// Create a temporary test database
	testDB, err := database.NewDB(":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Initialize schema
	if err := testDB.InitSchema(context.Background()); err != nil {
		t.Fatalf("Failed to initialize test schema: %v", err)
	}

	app := &testApp{
		db:       testDB,
		movies:   repository.NewMovieRepository(testDB),
		seasons:  repository.NewSeasonRepository(testDB),
		contacts: repository.NewContactMessageRepository(testDB),
	}
	app.router = newTestRouter(app.movies, app.seasons, app.contacts)

	// Return cleanup function
	cleanup := func() {
		if err := testDB.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	}

	return app, cleanup
}

func newTestRouter(movies MovieStore, seasons SeasonStore, contacts ContactStore) *mux.Router {
	router := mux.NewRouter()

	if movies != nil {
		h := NewMovieHandler(movies)
		router.HandleFunc("/movies/search", h.Search).Methods("GET")
		router.HandleFunc("/movies/categories", h.Categories).Methods("GET")
		router.HandleFunc("/movies/{id}", h.Get).Methods("GET")
		router.HandleFunc("/movies", h.List).Methods("GET")
		router.HandleFunc("/movies", h.Create).Methods("POST")
		router.HandleFunc("/movies/{id}", h.Update).Methods("PUT")
		router.HandleFunc("/movies/{id}", h.Delete).Methods("DELETE")
	}

	if seasons != nil {
		h := NewSeasonHandler(seasons)
		router.HandleFunc("/seasons/search", h.Search).Methods("GET")
		router.HandleFunc("/seasons/{id}", h.Get).Methods("GET")
		router.HandleFunc("/seasons", h.List).Methods("GET")
		router.HandleFunc("/seasons", h.Create).Methods("POST")
		router.HandleFunc("/seasons/{id}", h.Update).Methods("PUT")
		router.HandleFunc("/seasons/{id}", h.Delete).Methods("DELETE")
	}

	if contacts != nil {
		h := NewContactHandler(contacts)
		router.HandleFunc("/contact/stats", h.Stats).Methods("GET")
		router.HandleFunc("/contact/{id}", h.Get).Methods("GET")
		router.HandleFunc("/contact", h.List).Methods("GET")
		router.HandleFunc("/contact", h.Submit).Methods("POST")
		router.HandleFunc("/contact/{id}", h.UpdateStatus).Methods("PUT")
		router.HandleFunc("/contact/{id}", h.Delete).Methods("DELETE")
	}

	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Query   string          `json:"query"`
}

func doRequest(t *testing.T, router http.Handler, method, target string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "body: %s", rr.Body.String())
	return rr, env
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

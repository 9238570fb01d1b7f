package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"moviehub/database"
	"moviehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func createTestMovie(t *testing.T, app *testApp, title, category string) *models.Movie {
	t.Helper()
	movie, err := app.movies.Create(context.Background(), models.MovieInput{
		Title:       title,
		Description: "A test movie",
		Year:        2023,
		Rating:      ptr(7.5),
		Category:    category,
		ImageURL:    "https://picsum.photos/seed/test/400/600",
		Duration:    120,
	})
	require.NoError(t, err)
	return movie
}

func TestMovieHandler_List_EmptyDatabase(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	rr, env := doRequest(t, app.router, "GET", "/movies", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 0, *env.Count)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestMovieHandler_List_WithMovies(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	movie1 := createTestMovie(t, app, "Test Movie 1", "Action")
	movie2 := createTestMovie(t, app, "Test Movie 2", "Drama")

	rr, env := doRequest(t, app.router, "GET", "/movies", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var movies []models.Movie
	decodeData(t, env, &movies)
	assert.Len(t, movies, 2)
	assert.Equal(t, 2, *env.Count)

	titles := []string{movies[0].Title, movies[1].Title}
	assert.Contains(t, titles, movie1.Title)
	assert.Contains(t, titles, movie2.Title)
}

func TestMovieHandler_CreateThenFilterByCategory(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	createTestMovie(t, app, "Loud Explosions", "Action")

	rr, env := doRequest(t, app.router, "POST", "/movies", map[string]any{
		"title":    "Quiet Tears",
		"rating":   8.1,
		"category": "Drama",
		"imageUrl": "https://picsum.photos/seed/drama/400/600",
		"cast":     "A, B",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, env.Success)

	var created models.Movie
	decodeData(t, env, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Quiet Tears", created.Title)
	assert.Equal(t, "A, B", created.Cast)

	rr, env = doRequest(t, app.router, "GET", "/movies?category=Drama", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var movies []models.Movie
	decodeData(t, env, &movies)
	require.Len(t, movies, 1)
	assert.Equal(t, created.ID, movies[0].ID)
	assert.Equal(t, "Drama", movies[0].Category)
}

func TestMovieHandler_Create_MissingFields(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	tests := []struct {
		name    string
		body    any
		wantErr string
	}{
		{"empty object", map[string]any{}, "Missing required fields: title, rating, category, imageUrl"},
		{"empty body", "", "Missing required fields: title, rating, category, imageUrl"},
		{"only title", map[string]any{"title": "X"}, "Missing required fields: rating, category, imageUrl"},
		{"empty title", map[string]any{"title": "", "rating": 5, "category": "Drama", "imageUrl": "u"}, "Missing required fields: title"},
		{"malformed json", "{not json", "Invalid request body"},
		{"wrong type", `{"title": 12, "rating": 5, "category": "Drama", "imageUrl": "u"}`, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, env := doRequest(t, app.router, "POST", "/movies", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantErr, env.Error)
		})
	}

	movies, err := app.movies.FindAll(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, movies, "nothing is stored for rejected input")
}

func TestMovieHandler_Create_ZeroRatingAccepted(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	rr, env := doRequest(t, app.router, "POST", "/movies", map[string]any{
		"title": "Unrated", "rating": 0, "category": "Drama", "imageUrl": "u",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, env.Success)
}

func TestMovieHandler_Get(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	movie := createTestMovie(t, app, "Findable", "Action")

	rr, env := doRequest(t, app.router, "GET", "/movies/"+movie.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.Movie
	decodeData(t, env, &got)
	assert.Equal(t, movie.ID, got.ID)
	assert.Equal(t, "Findable", got.Title)

	rr, env = doRequest(t, app.router, "GET", "/movies/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Movie not found", env.Error)
}

func TestMovieHandler_Search(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	createTestMovie(t, app, "Neon Shadows", "Action")
	createTestMovie(t, app, "Whispering Woods", "Horror")

	rr, env := doRequest(t, app.router, "GET", "/movies/search?q=Neon", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Neon", env.Query)
	assert.Equal(t, 1, *env.Count)

	var movies []models.Movie
	decodeData(t, env, &movies)
	require.Len(t, movies, 1)
	assert.Equal(t, "Neon Shadows", movies[0].Title)

	rr, env = doRequest(t, app.router, "GET", "/movies/search", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Search query is required", env.Error)
}

func TestMovieHandler_Categories(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	createTestMovie(t, app, "One", "Sci-Fi")
	createTestMovie(t, app, "Two", "Action")
	createTestMovie(t, app, "Three", "Action")

	rr, env := doRequest(t, app.router, "GET", "/movies/categories", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var categories []string
	decodeData(t, env, &categories)
	assert.Equal(t, []string{"Action", "Sci-Fi"}, categories)
}

func TestMovieHandler_Update(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	movie := createTestMovie(t, app, "Before", "Action")

	rr, env := doRequest(t, app.router, "PUT", "/movies/"+movie.ID, map[string]any{"title": "After", "rating": nil})
	require.Equal(t, http.StatusOK, rr.Code)

	var updated models.Movie
	decodeData(t, env, &updated)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, 7.5, updated.Rating, "explicit null leaves the field alone")
	assert.Equal(t, "Action", updated.Category)

	rr, env = doRequest(t, app.router, "PUT", "/movies/"+movie.ID, map[string]any{})
	require.Equal(t, http.StatusOK, rr.Code)
	var unchanged models.Movie
	decodeData(t, env, &unchanged)
	assert.Equal(t, "After", unchanged.Title)

	rr, env = doRequest(t, app.router, "PUT", "/movies/missing", map[string]any{"title": "Ghost"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Movie not found", env.Error)
}

func TestMovieHandler_Delete(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	movie := createTestMovie(t, app, "Doomed", "Action")

	rr, env := doRequest(t, app.router, "DELETE", "/movies/"+movie.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Movie deleted successfully", env.Message)

	rr, env = doRequest(t, app.router, "DELETE", "/movies/"+movie.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Movie not found", env.Error)
}

func TestMovieHandler_Create_BodyTooLarge(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	body := `{"title":"` + strings.Repeat("a", maxBodyBytes) + `","rating":5,"category":"Drama","imageUrl":"u"}`
	rr, env := doRequest(t, app.router, "POST", "/movies", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Request body too large", env.Error)

	rr, env = doRequest(t, app.router, "GET", "/movies", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, *env.Count)
}

func TestMovieHandler_QueryParams(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	for _, title := range []string{"A", "B", "C"} {
		createTestMovie(t, app, title, "Action")
	}

	rr, env := doRequest(t, app.router, "GET", "/movies?limit=2&offset=0", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, *env.Count)

	// Large limits are not capped.
	rr, env = doRequest(t, app.router, "GET", "/movies?limit=1000", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 3, *env.Count)

	tests := []struct {
		target  string
		wantErr string
	}{
		{"/movies?limit=abc", "limit must be an integer"},
		{"/movies?offset=1.5", "offset must be an integer"},
		{"/movies?limit=0", "limit must be at least 1"},
		{"/movies/search?q=a&limit=0", "limit must be at least 1"},
		{"/movies?offset=-1", "offset must be at least 0"},
		{"/movies/search?q=a&limit=x", "limit must be an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rr, env := doRequest(t, app.router, "GET", tt.target, nil)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.wantErr, env.Error)
		})
	}
}

// mockMovieStore is a testify mock of MovieStore.
type mockMovieStore struct {
	mock.Mock
}

func (m *mockMovieStore) Create(ctx context.Context, input models.MovieInput) (*models.Movie, error) {
	args := m.Called(ctx, input)
	movie, _ := args.Get(0).(*models.Movie)
	return movie, args.Error(1)
}

func (m *mockMovieStore) FindByID(ctx context.Context, id string) (*models.Movie, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*models.Movie)
	return movie, args.Error(1)
}

func (m *mockMovieStore) FindByCategory(ctx context.Context, category string, limit, offset int) ([]models.Movie, error) {
	args := m.Called(ctx, category, limit, offset)
	movies, _ := args.Get(0).([]models.Movie)
	return movies, args.Error(1)
}

func (m *mockMovieStore) FindAll(ctx context.Context, limit, offset int) ([]models.Movie, error) {
	args := m.Called(ctx, limit, offset)
	movies, _ := args.Get(0).([]models.Movie)
	return movies, args.Error(1)
}

func (m *mockMovieStore) Search(ctx context.Context, query string, limit int) ([]models.Movie, error) {
	args := m.Called(ctx, query, limit)
	movies, _ := args.Get(0).([]models.Movie)
	return movies, args.Error(1)
}

func (m *mockMovieStore) Update(ctx context.Context, id string, patch models.MoviePatch) (*models.Movie, error) {
	args := m.Called(ctx, id, patch)
	movie, _ := args.Get(0).(*models.Movie)
	return movie, args.Error(1)
}

func (m *mockMovieStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockMovieStore) GetCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]string)
	return categories, args.Error(1)
}

func TestMovieHandler_DefaultPaging(t *testing.T) {
	store := new(mockMovieStore)
	store.On("FindAll", mock.Anything, 20, 0).Return([]models.Movie{}, nil)
	store.On("FindByCategory", mock.Anything, "Horror", 20, 0).Return([]models.Movie{}, nil)
	store.On("Search", mock.Anything, "x", 20).Return([]models.Movie{}, nil)

	router := newTestRouter(store, nil, nil)
	for _, target := range []string{"/movies", "/movies?category=Horror", "/movies/search?q=x"} {
		rr, _ := doRequest(t, router, "GET", target, nil)
		assert.Equal(t, http.StatusOK, rr.Code, target)
	}
	store.AssertExpectations(t)
}

func TestMovieHandler_StorageErrorHidesDetails(t *testing.T) {
	storageErr := &database.StorageError{Op: "query", Err: errors.New("disk I/O error")}
	store := new(mockMovieStore)
	store.On("FindAll", mock.Anything, 20, 0).Return(nil, storageErr)
	store.On("FindByID", mock.Anything, "abc").Return(nil, errors.New("unexpected failure"))

	router := newTestRouter(store, nil, nil)

	rr, env := doRequest(t, router, "GET", "/movies", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Internal server error", env.Error)
	assert.NotContains(t, rr.Body.String(), "disk I/O")

	rr, env = doRequest(t, router, "GET", "/movies/abc", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "unexpected failure", env.Error)

	store.AssertExpectations(t)
}

func TestMovieHandler_ValidationSkipsStorage(t *testing.T) {
	store := new(mockMovieStore)
	router := newTestRouter(store, nil, nil)

	rr, _ := doRequest(t, router, "POST", "/movies", map[string]any{"title": "No rating"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

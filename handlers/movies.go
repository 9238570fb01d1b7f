package handlers

import (
	"context"
	"net/http"

	"moviehub/models"
	"moviehub/validation"

	"github.com/gorilla/mux"
)

// MovieStore is the storage the movie endpoints depend on.
type MovieStore interface {
	Create(ctx context.Context, input models.MovieInput) (*models.Movie, error)
	FindByID(ctx context.Context, id string) (*models.Movie, error)
	FindByCategory(ctx context.Context, category string, limit, offset int) ([]models.Movie, error)
	FindAll(ctx context.Context, limit, offset int) ([]models.Movie, error)
	Search(ctx context.Context, query string, limit int) ([]models.Movie, error)
	Update(ctx context.Context, id string, patch models.MoviePatch) (*models.Movie, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetCategories(ctx context.Context) ([]string, error)
}

// MovieHandler serves /api/movies.
type MovieHandler struct {
	movies MovieStore
}

// NewMovieHandler creates a movie handler
func NewMovieHandler(movies MovieStore) *MovieHandler {
	return &MovieHandler{movies: movies}
}

var errMovieNotFound = &models.NotFoundError{Resource: "Movie"}

// List returns movies newest first, or the movies of one category when
// ?category is set.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, defaultListLimit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	var movies []models.Movie
	if category := r.URL.Query().Get("category"); category != "" {
		movies, err = h.movies.FindByCategory(ctx, category, page.Limit, page.Offset)
	} else {
		movies, err = h.movies.FindAll(ctx, page.Limit, page.Offset)
	}
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondList(w, movies)
}

// Search matches ?q against titles and descriptions.
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	q, err := parseSearch(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	movies, err := h.movies.Search(context.WithoutCancel(r.Context()), q.Q, q.Limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	count := len(movies)
	respondJSON(w, http.StatusOK, &models.APIResponse{Success: true, Data: movies, Count: &count, Query: q.Q})
}

// Categories returns the distinct categories in ascending order.
func (h *MovieHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.movies.GetCategories(context.WithoutCancel(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, categories)
}

// Get returns a single movie.
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	movie, err := h.movies.FindByID(context.WithoutCancel(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	if movie == nil {
		respondError(w, r, errMovieNotFound)
		return
	}
	respondData(w, http.StatusOK, movie)
}

// Create adds a movie. Title, rating, category and imageUrl are required.
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.MovieInput
	if err := decodeBody(w, r, &input); err != nil {
		respondError(w, r, err)
		return
	}
	if err := validation.Struct(&input); err != nil {
		respondError(w, r, err)
		return
	}

	movie, err := h.movies.Create(context.WithoutCancel(r.Context()), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, movie)
}

// Update applies the fields present in the body.
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.MoviePatch
	if err := decodeBody(w, r, &patch); err != nil {
		respondError(w, r, err)
		return
	}

	movie, err := h.movies.Update(context.WithoutCancel(r.Context()), mux.Vars(r)["id"], patch)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if movie == nil {
		respondError(w, r, errMovieNotFound)
		return
	}
	respondData(w, http.StatusOK, movie)
}

// Delete removes a movie.
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.movies.Delete(context.WithoutCancel(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !deleted {
		respondError(w, r, errMovieNotFound)
		return
	}
	respondMessage(w, "Movie deleted successfully")
}

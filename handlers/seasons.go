package handlers

import (
	"context"
	"net/http"

	"moviehub/models"
	"moviehub/validation"

	"github.com/gorilla/mux"
)

// SeasonStore is the storage the season endpoints depend on.
type SeasonStore interface {
	Create(ctx context.Context, input models.SeasonInput) (*models.Season, error)
	FindByID(ctx context.Context, id string) (*models.Season, error)
	FindAll(ctx context.Context, limit, offset int) ([]models.Season, error)
	Search(ctx context.Context, query string, limit int) ([]models.Season, error)
	Update(ctx context.Context, id string, patch models.SeasonPatch) (*models.Season, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// SeasonHandler serves /api/seasons.
type SeasonHandler struct {
	seasons SeasonStore
}

// NewSeasonHandler creates a season handler
func NewSeasonHandler(seasons SeasonStore) *SeasonHandler {
	return &SeasonHandler{seasons: seasons}
}

var errSeasonNotFound = &models.NotFoundError{Resource: "Season"}

func (h *SeasonHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, defaultListLimit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	seasons, err := h.seasons.FindAll(context.WithoutCancel(r.Context()), page.Limit, page.Offset)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondList(w, seasons)
}

func (h *SeasonHandler) Search(w http.ResponseWriter, r *http.Request) {
	q, err := parseSearch(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	seasons, err := h.seasons.Search(context.WithoutCancel(r.Context()), q.Q, q.Limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	count := len(seasons)
	respondJSON(w, http.StatusOK, &models.APIResponse{Success: true, Data: seasons, Count: &count, Query: q.Q})
}

func (h *SeasonHandler) Get(w http.ResponseWriter, r *http.Request) {
	season, err := h.seasons.FindByID(context.WithoutCancel(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	if season == nil {
		respondError(w, r, errSeasonNotFound)
		return
	}
	respondData(w, http.StatusOK, season)
}

// Create adds a season. Title, rating, imageUrl and episodes are required.
func (h *SeasonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.SeasonInput
	if err := decodeBody(w, r, &input); err != nil {
		respondError(w, r, err)
		return
	}
	if err := validation.Struct(&input); err != nil {
		respondError(w, r, err)
		return
	}

	season, err := h.seasons.Create(context.WithoutCancel(r.Context()), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, season)
}

func (h *SeasonHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.SeasonPatch
	if err := decodeBody(w, r, &patch); err != nil {
		respondError(w, r, err)
		return
	}

	season, err := h.seasons.Update(context.WithoutCancel(r.Context()), mux.Vars(r)["id"], patch)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if season == nil {
		respondError(w, r, errSeasonNotFound)
		return
	}
	respondData(w, http.StatusOK, season)
}

func (h *SeasonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.seasons.Delete(context.WithoutCancel(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !deleted {
		respondError(w, r, errSeasonNotFound)
		return
	}
	respondMessage(w, "Season deleted successfully")
}

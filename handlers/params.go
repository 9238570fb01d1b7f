package handlers

import (
	"net/http"
	"strconv"

	"moviehub/models"
	"moviehub/validation"
)

// Default page sizes
const (
	defaultListLimit    = 20
	defaultSearchLimit  = 20
	defaultContactLimit = 50
)

type pageQuery struct {
	Limit  int `json:"limit" validate:"min=1"`
	Offset int `json:"offset" validate:"min=0"`
}

type searchQuery struct {
	Q     string `json:"q"`
	Limit int    `json:"limit" validate:"min=1"`
}

// intParam extracts an integer query parameter with a default value.
// A present but non-numeric value is a validation error.
func intParam(r *http.Request, key string, defaultValue int) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, &models.ValidationError{
			Message: key + " must be an integer",
			Fields:  []string{key},
		}
	}
	return intValue, nil
}

func parsePage(r *http.Request, defaultLimit int) (pageQuery, error) {
	var q pageQuery
	var err error
	if q.Limit, err = intParam(r, "limit", defaultLimit); err != nil {
		return q, err
	}
	if q.Offset, err = intParam(r, "offset", 0); err != nil {
		return q, err
	}
	return q, validation.Struct(&q)
}

func parseSearch(r *http.Request) (searchQuery, error) {
	q := searchQuery{Q: r.URL.Query().Get("q")}
	if q.Q == "" {
		return q, &models.ValidationError{Message: "Search query is required", Fields: []string{"q"}}
	}

	var err error
	if q.Limit, err = intParam(r, "limit", defaultSearchLimit); err != nil {
		return q, err
	}
	return q, validation.Struct(&q)
}

package models

import "time"

// Season represents a series season in the catalog
type Season struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Year        int       `json:"year,omitempty"`
	Rating      float64   `json:"rating"`
	ImageURL    string    `json:"imageUrl"`
	Episodes    int       `json:"episodes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SeasonInput is the body accepted when creating a season.
type SeasonInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Year        int      `json:"year"`
	Rating      *float64 `json:"rating" validate:"required"`
	ImageURL    string   `json:"imageUrl" validate:"required"`
	Episodes    *int     `json:"episodes" validate:"required"`
}

// SeasonPatch carries the fields present in a partial update.
type SeasonPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Year        *int     `json:"year"`
	Rating      *float64 `json:"rating"`
	ImageURL    *string  `json:"imageUrl"`
	Episodes    *int     `json:"episodes"`
}

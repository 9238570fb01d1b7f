// Package models defines the data structures used throughout the application.
package models

import "time"

// Movie represents a movie in the catalog
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Year        int       `json:"year,omitempty"`
	Rating      float64   `json:"rating"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	Duration    int       `json:"duration,omitempty"` // in minutes
	Director    string    `json:"director,omitempty"`
	Cast        string    `json:"cast,omitempty"` // comma-joined names
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MovieInput is the body accepted when creating a movie.
type MovieInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Year        int      `json:"year"`
	Rating      *float64 `json:"rating" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	ImageURL    string   `json:"imageUrl" validate:"required"`
	Duration    int      `json:"duration"`
	Director    string   `json:"director"`
	Cast        string   `json:"cast"`
}

// MoviePatch carries the fields present in a partial update. Nil fields are
// left untouched.
type MoviePatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Year        *int     `json:"year"`
	Rating      *float64 `json:"rating"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	Duration    *int     `json:"duration"`
	Director    *string  `json:"director"`
	Cast        *string  `json:"cast"`
}

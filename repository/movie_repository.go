// Package repository provides data access layer for the catalog.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"moviehub/database"
	"moviehub/models"
)

const movieColumns = `id, title, description, year, rating, category, image_url,
	duration, director, cast_members, created_at, updated_at`

// MovieRepository handles database operations for movies
type MovieRepository struct {
	db    *database.DB
	now   func() time.Time
	newID func() string
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *database.DB) *MovieRepository {
	return &MovieRepository{db: db, now: utcNow, newID: newID}
}

func scanMovie(row database.RowScanner) (models.Movie, error) {
	var movie models.Movie
	var description, category, imageURL, director, cast sql.NullString
	var year, duration sql.NullInt64
	var rating sql.NullFloat64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&movie.ID, &movie.Title, &description, &year, &rating, &category,
		&imageURL, &duration, &director, &cast, &createdAt, &updatedAt,
	)
	if err != nil {
		return movie, err
	}

	// Handle nullable fields
	movie.Description = description.String
	movie.Year = int(year.Int64)
	movie.Rating = rating.Float64
	movie.Category = category.String
	movie.ImageURL = imageURL.String
	movie.Duration = int(duration.Int64)
	movie.Director = director.String
	movie.Cast = cast.String
	movie.CreatedAt = createdAt.Time
	movie.UpdatedAt = updatedAt.Time

	return movie, nil
}

// Create inserts a new movie and returns it as constructed, without reading
// it back.
func (r *MovieRepository) Create(ctx context.Context, input models.MovieInput) (*models.Movie, error) {
	now := r.now()
	movie := &models.Movie{
		ID:          r.newID(),
		Title:       input.Title,
		Description: input.Description,
		Year:        input.Year,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Duration:    input.Duration,
		Director:    input.Director,
		Cast:        input.Cast,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Rating != nil {
		movie.Rating = *input.Rating
	}

	query := `
		INSERT INTO movies (id, title, description, year, rating, category, image_url,
							duration, director, cast_members, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Execute(ctx, query,
		movie.ID, movie.Title, nullString(movie.Description), nullInt(movie.Year),
		movie.Rating, movie.Category, movie.ImageURL, nullInt(movie.Duration),
		nullString(movie.Director), nullString(movie.Cast), movie.CreatedAt, movie.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	return movie, nil
}

// FindByID retrieves a movie by its ID. It returns nil when there is no such
// movie.
func (r *MovieRepository) FindByID(ctx context.Context, id string) (*models.Movie, error) {
	movie, err := database.GetOne(ctx, r.db, scanMovie,
		`SELECT `+movieColumns+` FROM movies WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return movie, nil
}

// FindByCategory lists movies whose category equals category, in storage order.
func (r *MovieRepository) FindByCategory(ctx context.Context, category string, limit, offset int) ([]models.Movie, error) {
	movies, err := database.GetAll(ctx, r.db, scanMovie,
		`SELECT `+movieColumns+` FROM movies WHERE category = ? LIMIT ? OFFSET ?`,
		category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies by category: %w", err)
	}
	return movies, nil
}

// FindAll lists movies newest first.
func (r *MovieRepository) FindAll(ctx context.Context, limit, offset int) ([]models.Movie, error) {
	movies, err := database.GetAll(ctx, r.db, scanMovie,
		`SELECT `+movieColumns+` FROM movies ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	return movies, nil
}

// Search returns up to limit movies whose title or description contains
// query. There is no ranking; matches come back in storage order.
func (r *MovieRepository) Search(ctx context.Context, query string, limit int) ([]models.Movie, error) {
	pattern := containsPattern(query)
	movies, err := database.GetAll(ctx, r.db, scanMovie,
		`SELECT `+movieColumns+` FROM movies
		 WHERE title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\'
		 LIMIT ?`,
		pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	return movies, nil
}

// Update applies the fields present in patch. An empty patch returns the
// current row untouched. It returns nil when the movie does not exist.
func (r *MovieRepository) Update(ctx context.Context, id string, patch models.MoviePatch) (*models.Movie, error) {
	var a assignments
	if patch.Title != nil {
		a.set("title", *patch.Title)
	}
	if patch.Description != nil {
		a.set("description", nullString(*patch.Description))
	}
	if patch.Year != nil {
		a.set("year", nullInt(*patch.Year))
	}
	if patch.Rating != nil {
		a.set("rating", *patch.Rating)
	}
	if patch.Category != nil {
		a.set("category", *patch.Category)
	}
	if patch.ImageURL != nil {
		a.set("image_url", *patch.ImageURL)
	}
	if patch.Duration != nil {
		a.set("duration", nullInt(*patch.Duration))
	}
	if patch.Director != nil {
		a.set("director", nullString(*patch.Director))
	}
	if patch.Cast != nil {
		a.set("cast_members", nullString(*patch.Cast))
	}

	if a.empty() {
		return r.FindByID(ctx, id)
	}

	query, args := a.statement("movies", id, r.now())
	res, err := r.db.Execute(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

// Delete removes a movie. It reports whether a row was removed.
func (r *MovieRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.Execute(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete movie: %w", err)
	}
	return res.RowsAffected == 1, nil
}

// DeleteAll removes every movie and returns how many were removed.
func (r *MovieRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.Execute(ctx, `DELETE FROM movies`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear movies: %w", err)
	}
	return res.RowsAffected, nil
}

// GetCategories returns the distinct categories in ascending order.
func (r *MovieRepository) GetCategories(ctx context.Context) ([]string, error) {
	categories, err := database.GetAll(ctx, r.db, func(row database.RowScanner) (string, error) {
		var category string
		err := row.Scan(&category)
		return category, err
	}, `SELECT DISTINCT category FROM movies WHERE category IS NOT NULL ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"moviehub/database"
	"moviehub/models"
)

const seasonColumns = `id, title, description, year, rating, image_url, episodes,
	created_at, updated_at`

// SeasonRepository handles database operations for seasons
type SeasonRepository struct {
	db    *database.DB
	now   func() time.Time
	newID func() string
}

// NewSeasonRepository creates a new season repository
func NewSeasonRepository(db *database.DB) *SeasonRepository {
	return &SeasonRepository{db: db, now: utcNow, newID: newID}
}

func scanSeason(row database.RowScanner) (models.Season, error) {
	var season models.Season
	var description, imageURL sql.NullString
	var year, episodes sql.NullInt64
	var rating sql.NullFloat64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&season.ID, &season.Title, &description, &year, &rating,
		&imageURL, &episodes, &createdAt, &updatedAt,
	)
	if err != nil {
		return season, err
	}

	season.Description = description.String
	season.Year = int(year.Int64)
	season.Rating = rating.Float64
	season.ImageURL = imageURL.String
	season.Episodes = int(episodes.Int64)
	season.CreatedAt = createdAt.Time
	season.UpdatedAt = updatedAt.Time

	return season, nil
}

// Create inserts a new season and returns it as constructed.
func (r *SeasonRepository) Create(ctx context.Context, input models.SeasonInput) (*models.Season, error) {
	now := r.now()
	season := &models.Season{
		ID:          r.newID(),
		Title:       input.Title,
		Description: input.Description,
		Year:        input.Year,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Rating != nil {
		season.Rating = *input.Rating
	}
	if input.Episodes != nil {
		season.Episodes = *input.Episodes
	}

	query := `
		INSERT INTO seasons (id, title, description, year, rating, image_url, episodes,
							 created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Execute(ctx, query,
		season.ID, season.Title, nullString(season.Description), nullInt(season.Year),
		season.Rating, season.ImageURL, season.Episodes, season.CreatedAt, season.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	return season, nil
}

// FindByID retrieves a season by its ID, or nil.
func (r *SeasonRepository) FindByID(ctx context.Context, id string) (*models.Season, error) {
	season, err := database.GetOne(ctx, r.db, scanSeason,
		`SELECT `+seasonColumns+` FROM seasons WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return season, nil
}

// FindAll lists seasons newest first.
func (r *SeasonRepository) FindAll(ctx context.Context, limit, offset int) ([]models.Season, error) {
	seasons, err := database.GetAll(ctx, r.db, scanSeason,
		`SELECT `+seasonColumns+` FROM seasons ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query seasons: %w", err)
	}
	return seasons, nil
}

// Search matches query against title and description.
func (r *SeasonRepository) Search(ctx context.Context, query string, limit int) ([]models.Season, error) {
	pattern := containsPattern(query)
	seasons, err := database.GetAll(ctx, r.db, scanSeason,
		`SELECT `+seasonColumns+` FROM seasons
		 WHERE title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\'
		 LIMIT ?`,
		pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search seasons: %w", err)
	}
	return seasons, nil
}

// Update applies the fields present in patch; see MovieRepository.Update.
func (r *SeasonRepository) Update(ctx context.Context, id string, patch models.SeasonPatch) (*models.Season, error) {
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
	if patch.ImageURL != nil {
		a.set("image_url", *patch.ImageURL)
	}
	if patch.Episodes != nil {
		a.set("episodes", *patch.Episodes)
	}

	if a.empty() {
		return r.FindByID(ctx, id)
	}

	query, args := a.statement("seasons", id, r.now())
	res, err := r.db.Execute(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update season: %w", err)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

// Delete removes a season and reports whether it existed.
func (r *SeasonRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.Execute(ctx, `DELETE FROM seasons WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete season: %w", err)
	}
	return res.RowsAffected == 1, nil
}

// DeleteAll removes every season.
func (r *SeasonRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.Execute(ctx, `DELETE FROM seasons`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear seasons: %w", err)
	}
	return res.RowsAffected, nil
}

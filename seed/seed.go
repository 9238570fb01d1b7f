// Package seed replaces the movie and season catalog with sample data.
package seed

import (
	"context"
	"fmt"

	"moviehub/logging"
	"moviehub/models"
)

// MovieWriter is the part of the movie repository seeding needs.
type MovieWriter interface {
	Create(ctx context.Context, input models.MovieInput) (*models.Movie, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// SeasonWriter is the part of the season repository seeding needs.
type SeasonWriter interface {
	Create(ctx context.Context, input models.SeasonInput) (*models.Season, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// Result reports what a seeding run did.
type Result struct {
	MoviesRemoved  int64
	SeasonsRemoved int64
	Movies         int
	Seasons        int
}

// Run clears movies and seasons and inserts the sample catalog. Contact
// messages are left alone. Rows are inserted one at a time, so a failure
// part way leaves a partial catalog.
func Run(ctx context.Context, movies MovieWriter, seasons SeasonWriter) (*Result, error) {
	var res Result
	var err error

	if res.MoviesRemoved, err = movies.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear movies: %w", err)
	}
	if res.SeasonsRemoved, err = seasons.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear seasons: %w", err)
	}
	logging.Info().
		Int64("movies", res.MoviesRemoved).
		Int64("seasons", res.SeasonsRemoved).
		Msg("Cleared existing data")

	for _, input := range Movies {
		if _, err := movies.Create(ctx, input); err != nil {
			return nil, fmt.Errorf("failed to seed movie %q: %w", input.Title, err)
		}
		res.Movies++
	}
	logging.Info().Int("count", res.Movies).Msg("Seeded movies")

	for _, input := range Seasons {
		if _, err := seasons.Create(ctx, input); err != nil {
			return nil, fmt.Errorf("failed to seed season %q: %w", input.Title, err)
		}
		res.Seasons++
	}
	logging.Info().Int("count", res.Seasons).Msg("Seeded seasons")

	return &res, nil
}

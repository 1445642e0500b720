package memory

import (
	"context"

	"streaminghub-be/internal/entity"
	"streaminghub-be/internal/repository/contract"
)

// MovieRepository is an in-memory catalog used by tests and local runs
// without a database. Err, when set, is returned from every call to simulate
// an unreachable store.
type MovieRepository struct {
	Movies []*entity.Movie
	Err    error

	// Calls counts FindAll invocations, useful for asserting that the
	// catalog is re-fetched per request.
	Calls int
}

var _ contract.MovieRepository = &MovieRepository{}

func NewMovieRepository(movies []*entity.Movie) *MovieRepository {
	return &MovieRepository{Movies: movies}
}

func (r *MovieRepository) FindAll(ctx context.Context, limit int) ([]*entity.Movie, error) {
	r.Calls++
	if r.Err != nil {
		return nil, r.Err
	}
	if limit > 0 && limit < len(r.Movies) {
		return r.Movies[:limit], nil
	}
	return r.Movies, nil
}

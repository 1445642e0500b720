package contract

import (
	"context"

	"streaminghub-be/internal/entity"
)

type MovieRepository interface {
	// FindAll returns movies in stable fetch order. A limit <= 0 means all
	// rows; the catalog is re-queried on every call, never cached.
	FindAll(ctx context.Context, limit int) ([]*entity.Movie, error)
}

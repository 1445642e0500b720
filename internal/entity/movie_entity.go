package entity

import (
	"github.com/google/uuid"
)

// Movie is the canonical catalog item after column coalescing. Records are
// immutable once fetched; every request re-reads the catalog from the store.
type Movie struct {
	Id          uuid.UUID
	Title       string
	Genre       string
	Description string
}

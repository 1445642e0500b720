package dto

import (
	"github.com/google/uuid"
)

type MovieResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
}

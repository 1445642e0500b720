package model

import (
	"github.com/google/uuid"
)

// Movie maps the `filmy` table. Seed data was imported from two sources over
// time, so every descriptive field exists in a Polish and an English column
// and either may be NULL on a given row.
type Movie struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Tytul       *string   `gorm:"column:tytul"`
	Title       *string   `gorm:"column:title"`
	Gatunek     *string   `gorm:"column:gatunek"`
	Genre       *string   `gorm:"column:genre"`
	Opis        *string   `gorm:"column:opis"`
	Description *string   `gorm:"column:description"`
}

func (Movie) TableName() string {
	return "filmy"
}

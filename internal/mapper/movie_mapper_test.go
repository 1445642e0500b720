package mapper

import (
	"strings"
	"testing"

	"streaminghub-be/internal/model"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestToEntityLocalizedWins(t *testing.T) {
	m := NewMovieMapper()

	e := m.ToEntity(&model.Movie{
		Tytul:       strPtr("Nowa"),
		Title:       strPtr("Nova"),
		Gatunek:     strPtr("Sci-Fi"),
		Opis:        strPtr("Kosmiczna odyseja"),
		Description: strPtr("A space odyssey"),
	})

	assert.Equal(t, "Nowa", e.Title)
	assert.Equal(t, "Sci-Fi", e.Genre)
	assert.Equal(t, "Kosmiczna odyseja", e.Description)
}

func TestToEntityEnglishFallback(t *testing.T) {
	m := NewMovieMapper()

	e := m.ToEntity(&model.Movie{
		Title:       strPtr("Nova"),
		Genre:       strPtr("Sci-Fi"),
		Description: strPtr("A space odyssey"),
	})

	assert.Equal(t, "Nova", e.Title)
	assert.Equal(t, "Sci-Fi", e.Genre)
	assert.Equal(t, "A space odyssey", e.Description)
}

func TestToEntityMissingFieldLiteral(t *testing.T) {
	m := NewMovieMapper()

	e := m.ToEntity(&model.Movie{
		Tytul:   strPtr("Nowa"),
		Gatunek: strPtr("Sci-Fi"),
		// no description in either language
	})

	assert.Equal(t, MissingField, e.Description)
	// exactly one fallback marker in the whole record
	joined := e.Title + "|" + e.Genre + "|" + e.Description
	assert.Equal(t, 1, strings.Count(joined, MissingField))
}

func TestToEntityNil(t *testing.T) {
	m := NewMovieMapper()
	assert.Nil(t, m.ToEntity(nil))
}

package prompt

import (
	"strings"
	"testing"

	"streaminghub-be/internal/constant"
	"streaminghub-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestRenderCatalog(t *testing.T) {
	movies := []*entity.Movie{
		{Title: "Nova", Genre: "Sci-Fi", Description: "Kosmiczna odyseja"},
		{Title: "Dom", Genre: "Dramat", Description: "Rodzinna saga"},
	}

	rendered := RenderCatalog(movies)

	lines := strings.Split(rendered, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "Tytuł: Nova, Gatunek: Sci-Fi, Opis: Kosmiczna odyseja", lines[0])
	assert.Equal(t, "Tytuł: Dom, Gatunek: Dramat, Opis: Rodzinna saga", lines[1])
}

func TestRenderCatalogEmpty(t *testing.T) {
	assert.Equal(t, "", RenderCatalog(nil))
}

func TestBuildSystemPromptChat(t *testing.T) {
	movies := []*entity.Movie{
		{Title: "Nova", Genre: "Sci-Fi", Description: "Kosmiczna odyseja"},
	}

	p := BuildSystemPrompt(PersonaChat, movies, "")

	assert.Contains(t, p, "StreamingHub")
	assert.Contains(t, p, constant.ReadySentinel)
	assert.Contains(t, p, "Tytuł: Nova, Gatunek: Sci-Fi, Opis: Kosmiczna odyseja")
}

func TestBuildSystemPromptRecommend(t *testing.T) {
	movies := []*entity.Movie{
		{Title: "Nova", Genre: "Sci-Fi", Description: "Kosmiczna odyseja"},
	}

	p := BuildSystemPrompt(PersonaRecommend, movies, "lubię kosmos")

	assert.Contains(t, p, `preferencje: "lubię kosmos"`)
	assert.Contains(t, p, "Tytuł: Nova")
	assert.Contains(t, p, "🎬 [Tytuł]")
	assert.Contains(t, p, "Dopasowanie: XX%")
	assert.Contains(t, p, "Dlaczego: [wyjaśnienie]")
	// The recommend persona must never instruct the readiness sentinel.
	assert.NotContains(t, p, constant.ReadySentinelKeyword)
}

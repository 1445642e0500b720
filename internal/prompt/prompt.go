// Package prompt renders the grounded system prompts for the two dialogue
// personas. The catalog is embedded verbatim; content that happens to contain
// the readiness sentinel is not escaped.
package prompt

import (
	"fmt"
	"strings"

	"streaminghub-be/internal/entity"
)

// Persona selects which instruction block BuildSystemPrompt renders.
type Persona int

const (
	// PersonaChat probes the user's movie tastes and emits the readiness
	// sentinel once it has gathered enough signal.
	PersonaChat Persona = iota
	// PersonaRecommend produces the ranked top-3 list from a preference
	// summary.
	PersonaRecommend
)

const chatTemplate = `Jesteś asystentem AI dla platformy StreamingHub.
Twoim zadaniem jest rozmawiać z użytkownikiem o jego gustach filmowych i zadawać pytania doprecyzowujące.
Gdy zbierzesz wystarczająco informacji, napisz "=== GOTOWE_DO_REKOMENDACJI ===" na końcu wiadomości.

Dostępne filmy:
%s

Bądź przyjazny i naturalny.`

const recommendTemplate = `Jesteś ekspertem od filmów.
Użytkownik opisał swoje preferencje: "%s"

Dostępne filmy:
%s

Wybierz 3 najlepsze i wyjaśnij dlaczego pasują.
Format:
🎬 [Tytuł]
Dopasowanie: XX%%
Dlaczego: [wyjaśnienie]`

// RenderCatalog renders one line per movie in fetch order.
func RenderCatalog(movies []*entity.Movie) string {
	lines := make([]string, 0, len(movies))
	for _, m := range movies {
		lines = append(lines, fmt.Sprintf("Tytuł: %s, Gatunek: %s, Opis: %s", m.Title, m.Genre, m.Description))
	}
	return strings.Join(lines, "\n")
}

// BuildSystemPrompt renders the instruction block for the given persona over
// the supplied catalog. For PersonaRecommend, extra is the caller's preference
// text and is embedded verbatim; for PersonaChat it is ignored.
func BuildSystemPrompt(persona Persona, movies []*entity.Movie, extra string) string {
	catalog := RenderCatalog(movies)

	switch persona {
	case PersonaRecommend:
		return fmt.Sprintf(recommendTemplate, extra, catalog)
	default:
		return fmt.Sprintf(chatTemplate, catalog)
	}
}

package mapper

import (
	"streaminghub-be/internal/entity"
	"streaminghub-be/internal/model"
)

// MissingField is rendered when a row carries neither the Polish nor the
// English variant of a column. The frontend has grown to rely on it, so the
// literal stays until a data cleanup lands.
const MissingField = "undefined"

type MovieMapper struct{}

func NewMovieMapper() *MovieMapper {
	return &MovieMapper{}
}

// ToEntity coalesces the dual-language columns into the canonical shape.
// The Polish column wins when both are set.
func (m *MovieMapper) ToEntity(mov *model.Movie) *entity.Movie {
	if mov == nil {
		return nil
	}

	return &entity.Movie{
		Id:          mov.Id,
		Title:       coalesce(mov.Tytul, mov.Title),
		Genre:       coalesce(mov.Gatunek, mov.Genre),
		Description: coalesce(mov.Opis, mov.Description),
	}
}

func (m *MovieMapper) ToEntities(models []*model.Movie) []*entity.Movie {
	entities := make([]*entity.Movie, 0, len(models))
	for _, mov := range models {
		entities = append(entities, m.ToEntity(mov))
	}
	return entities
}

func coalesce(localized, english *string) string {
	if localized != nil {
		return *localized
	}
	if english != nil {
		return *english
	}
	return MissingField
}

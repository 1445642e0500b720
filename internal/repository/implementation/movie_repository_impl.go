package implementation

import (
	"context"

	"streaminghub-be/internal/entity"
	"streaminghub-be/internal/mapper"
	"streaminghub-be/internal/model"
	"streaminghub-be/internal/repository/contract"

	"gorm.io/gorm"
)

type MovieRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MovieMapper
}

func NewMovieRepository(db *gorm.DB) contract.MovieRepository {
	return &MovieRepositoryImpl{
		db:     db,
		mapper: mapper.NewMovieMapper(),
	}
}

func (r *MovieRepositoryImpl) FindAll(ctx context.Context, limit int) ([]*entity.Movie, error) {
	var models []*model.Movie
	query := r.db.WithContext(ctx).Order("id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

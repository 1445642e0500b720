package service

import (
	"context"

	"streaminghub-be/internal/dto"
	"streaminghub-be/internal/repository/contract"
)

// IMovieService is the pass-through catalog listing; no LLM involvement.
type IMovieService interface {
	List(ctx context.Context) ([]dto.MovieResponse, error)
}

type movieService struct {
	movieRepo contract.MovieRepository
	listLimit int
}

func NewMovieService(movieRepo contract.MovieRepository, listLimit int) IMovieService {
	return &movieService{
		movieRepo: movieRepo,
		listLimit: listLimit,
	}
}

func (s *movieService) List(ctx context.Context) ([]dto.MovieResponse, error) {
	movies, err := s.movieRepo.FindAll(ctx, s.listLimit)
	if err != nil {
		return nil, err
	}

	response := make([]dto.MovieResponse, 0, len(movies))
	for _, m := range movies {
		response = append(response, dto.MovieResponse{
			Id:          m.Id,
			Title:       m.Title,
			Genre:       m.Genre,
			Description: m.Description,
		})
	}
	return response, nil
}

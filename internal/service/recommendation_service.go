package service

import (
	"context"

	"streaminghub-be/internal/constant"
	"streaminghub-be/internal/dto"
	"streaminghub-be/internal/pkg/logger"
	"streaminghub-be/internal/prompt"
	"streaminghub-be/internal/repository/contract"
	"streaminghub-be/pkg/llm"
)

const (
	recommendTemperature = 0.7
	recommendMaxTokens   = 1000
)

// IRecommendationService produces the ranked short-list from a preference
// summary. Single shot: no history, exactly one provider call, output
// returned as-is.
type IRecommendationService interface {
	Recommend(ctx context.Context, req *dto.RecommendationRequest) (*dto.RecommendationResponse, error)
}

type recommendationService struct {
	movieRepo   contract.MovieRepository
	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewRecommendationService(movieRepo contract.MovieRepository, llmProvider llm.LLMProvider, log logger.ILogger) IRecommendationService {
	return &recommendationService{
		movieRepo:   movieRepo,
		llmProvider: llmProvider,
		log:         log,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, req *dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	// Full catalog here, unlike the chat turn's bounded grounding.
	movies, err := s.movieRepo.FindAll(ctx, 0)
	if err != nil {
		s.log.Warn("recommendation", "catalog unavailable, grounding on empty catalog", map[string]interface{}{
			"error": err.Error(),
		})
		movies = nil
	}

	systemPrompt := prompt.BuildSystemPrompt(prompt.PersonaRecommend, movies, req.Preferences)

	raw, err := s.llmProvider.Chat(ctx,
		[]llm.Message{{Role: constant.ChatMessageRoleSystem, Content: systemPrompt}},
		llm.WithTemperature(recommendTemperature),
		llm.WithMaxTokens(recommendMaxTokens),
	)
	if err != nil {
		return nil, err
	}

	return &dto.RecommendationResponse{Recommendations: raw}, nil
}

package service

import (
	"context"
	"strings"

	"streaminghub-be/internal/constant"
	"streaminghub-be/internal/dto"
	"streaminghub-be/internal/entity"
	"streaminghub-be/internal/pkg/logger"
	"streaminghub-be/internal/prompt"
	"streaminghub-be/internal/repository/contract"
	"streaminghub-be/pkg/llm"
)

const (
	chatTemperature = 0.8
	chatMaxTokens   = 800
)

// readiness is the dialogue state derived once per turn from the raw
// completion. There is no persisted state machine: the caller owns the
// transcript and switches to the recommendation endpoint when told to.
type readiness int

const (
	gathering readiness = iota
	ready
)

func detectReadiness(raw string) readiness {
	if strings.Contains(raw, constant.ReadySentinelKeyword) {
		return ready
	}
	return gathering
}

// IChatService runs one grounded chat turn.
type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	movieRepo    contract.MovieRepository
	llmProvider  llm.LLMProvider
	catalogLimit int
	log          logger.ILogger
}

func NewChatService(movieRepo contract.MovieRepository, llmProvider llm.LLMProvider, catalogLimit int, log logger.ILogger) IChatService {
	return &chatService{
		movieRepo:    movieRepo,
		llmProvider:  llmProvider,
		catalogLimit: catalogLimit,
		log:          log,
	}
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	movies := s.fetchCatalog(ctx)

	messages := make([]llm.Message, 0, len(req.ConversationHistory)+2)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: prompt.BuildSystemPrompt(prompt.PersonaChat, movies, ""),
	})
	for _, turn := range req.ConversationHistory {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: req.Message,
	})

	raw, err := s.llmProvider.Chat(ctx, messages,
		llm.WithTemperature(chatTemperature),
		llm.WithMaxTokens(chatMaxTokens),
	)
	if err != nil {
		return nil, err
	}

	state := detectReadiness(raw)
	response := raw
	if state == ready {
		response = strings.TrimSpace(strings.Replace(raw, constant.ReadySentinel, "", 1))
	}

	return &dto.ChatResponse{
		Response:                response,
		ReadyForRecommendations: state == ready,
	}, nil
}

// fetchCatalog degrades to an empty catalog when the store is unreachable.
// A chat turn without grounding is still more useful than a failed request.
func (s *chatService) fetchCatalog(ctx context.Context) []*entity.Movie {
	movies, err := s.movieRepo.FindAll(ctx, s.catalogLimit)
	if err != nil {
		s.log.Warn("chatbot", "catalog unavailable, grounding on empty catalog", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return movies
}

package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"streaminghub-be/internal/bootstrap"
	"streaminghub-be/internal/config"
	"streaminghub-be/internal/constant"
	"streaminghub-be/internal/controller"
	"streaminghub-be/internal/dto"
	"streaminghub-be/internal/entity"
	"streaminghub-be/internal/pkg/logger"
	"streaminghub-be/internal/repository/memory"
	"streaminghub-be/internal/service"
	"streaminghub-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	reply string
	err   error

	calls    int
	lastMsgs []llm.Message
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.calls++
	s.lastMsgs = history
	return s.reply, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func newTestApp(repo *memory.MovieRepository, provider *stubProvider) *fiber.App {
	cfg := &config.Config{
		App:     config.AppConfig{Port: "3000"},
		Catalog: config.CatalogConfig{ChatLimit: 50, ListLimit: 100},
	}

	log := logger.NopLogger{}
	container := &bootstrap.Container{
		ChatController:           controller.NewChatController(service.NewChatService(repo, provider, cfg.Catalog.ChatLimit, log)),
		RecommendationController: controller.NewRecommendationController(service.NewRecommendationService(repo, provider, log)),
		MovieController:          controller.NewMovieController(service.NewMovieService(repo, cfg.Catalog.ListLimit)),
		Logger:                   log,
	}

	return New(cfg, container).GetApp()
}

func TestChatMissingMessage(t *testing.T) {
	provider := &stubProvider{reply: "should not be called"}
	app := newTestApp(memory.NewMovieRepository(nil), provider)

	req := httptest.NewRequest("POST", "/api/ai-chat", strings.NewReader(`{"conversationHistory":[]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, constant.MsgMissingMessage, body["error"])
	assert.Equal(t, 0, provider.calls)
}

func TestPreflight(t *testing.T) {
	app := newTestApp(memory.NewMovieRepository(nil), &stubProvider{})

	for _, path := range []string{"/api/ai-chat", "/api/recommendations", "/api/movies"} {
		req := httptest.NewRequest("OPTIONS", path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "GET,OPTIONS,PATCH,DELETE,POST,PUT", resp.Header.Get("Access-Control-Allow-Methods"))
		assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Headers"))

		body, _ := io.ReadAll(resp.Body)
		assert.Empty(t, body, path)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	app := newTestApp(memory.NewMovieRepository(nil), &stubProvider{})

	req := httptest.NewRequest("GET", "/api/ai-chat", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, constant.MsgMethodNotAllowed, body["error"])
}

func TestChatScenario(t *testing.T) {
	repo := memory.NewMovieRepository([]*entity.Movie{
		{Title: "Nova", Genre: "Sci-Fi", Description: "Kosmiczna odyseja"},
	})
	provider := &stubProvider{reply: "What era? === GOTOWE_DO_REKOMENDACJI ==="}
	app := newTestApp(repo, provider)

	req := httptest.NewRequest("POST", "/api/ai-chat",
		strings.NewReader(`{"message":"I like space movies","conversationHistory":[]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "What era?", body.Response)
	assert.True(t, body.ReadyForRecommendations)

	// the catalog made it into the grounding prompt
	require.NotEmpty(t, provider.lastMsgs)
	assert.Contains(t, provider.lastMsgs[0].Content, "Tytuł: Nova")
}

func TestChatProviderWithoutCompletion(t *testing.T) {
	app := newTestApp(memory.NewMovieRepository(nil), &stubProvider{err: llm.ErrNoCompletion})

	req := httptest.NewRequest("POST", "/api/ai-chat", strings.NewReader(`{"message":"hej"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, constant.MsgNoCompletion, body["error"])
}

func TestRecommendations(t *testing.T) {
	repo := memory.NewMovieRepository([]*entity.Movie{
		{Title: "Nova", Genre: "Sci-Fi", Description: "Kosmiczna odyseja"},
	})
	provider := &stubProvider{reply: "🎬 Nova\nDopasowanie: 95%\nDlaczego: kosmos"}
	app := newTestApp(repo, provider)

	req := httptest.NewRequest("POST", "/api/recommendations", strings.NewReader(`{"preferences":"kosmos"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.RecommendationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Recommendations, "🎬 Nova")

	assert.Equal(t, 1, provider.calls)
	require.Len(t, provider.lastMsgs, 1) // system-only, no history
}

func TestMoviesEmptyStore(t *testing.T) {
	app := newTestApp(memory.NewMovieRepository(nil), &stubProvider{})

	req := httptest.NewRequest("GET", "/api/movies", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[]`, string(body))
}

func TestMoviesListing(t *testing.T) {
	repo := memory.NewMovieRepository([]*entity.Movie{
		{Title: "Nova", Genre: "Sci-Fi", Description: "Kosmiczna odyseja"},
		{Title: "Dom", Genre: "Dramat", Description: "Rodzinna saga"},
	})
	app := newTestApp(repo, &stubProvider{})

	req := httptest.NewRequest("GET", "/api/movies", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []dto.MovieResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "Nova", body[0].Title)
}

func TestHealth(t *testing.T) {
	app := newTestApp(memory.NewMovieRepository(nil), &stubProvider{})

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

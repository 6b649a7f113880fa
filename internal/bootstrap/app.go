package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"studybot-backend/internal/export"
	"studybot-backend/internal/generate"
	"studybot-backend/internal/llm"
	"studybot-backend/internal/llm/gemini"
	"studybot-backend/internal/llm/openai"
	"studybot-backend/internal/services/health"
	"studybot-backend/internal/shared/config"
	"studybot-backend/internal/shared/server"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	LLM             llm.Client
	GenerateService *generate.Service
	GenerateHandler *generate.Handler
	ExportHandler   *export.Handler
	HealthService   *health.Service
}

// Build prepares shared dependencies and wires the router. The LLM client
// is constructed from configuration; a missing API key fails here, before
// any request is served.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return BuildWithLLM(cfg, client)
}

// BuildWithLLM wires the app around an existing client. Tests use this to
// inject a deterministic stub instead of the live network API.
func BuildWithLLM(cfg config.Config, client llm.Client) (*App, error) {
	if client == nil {
		return nil, fmt.Errorf("missing llm client")
	}

	generateSvc := generate.NewService(client, cfg.LLMTemperature, cfg.LLMMaxTokens)
	app := &App{
		Config:          cfg,
		LLM:             client,
		GenerateService: generateSvc,
		GenerateHandler: generate.NewHandler(generateSvc),
		ExportHandler:   export.NewHandler(),
		HealthService:   health.NewService(cfg.LLMProvider, cfg.LLMModel),
	}

	app.Router = server.NewRouter(cfg, server.Handlers{
		Health:   app.HealthService,
		Generate: app.GenerateHandler,
		Export:   app.ExportHandler,
	})
	return app, nil
}

func newLLMClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, time.Duration(cfg.LLMTimeoutSecs)*time.Second)
	default:
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
	}
}

package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"studybot-backend/internal/llm"
	"studybot-backend/internal/plan"
	"studybot-backend/internal/shared/metrics"
	"studybot-backend/internal/shared/telemetry"
)

const (
	defaultWorkStart = "09:00"
	defaultWorkEnd   = "18:00"
)

// Service builds prompts and turns model completions into artifacts.
type Service struct {
	LLM             llm.Client
	Temperature     float32
	MaxOutputTokens int32
}

// NewService constructs a Service.
func NewService(client llm.Client, temperature float32, maxOutputTokens int32) *Service {
	return &Service{
		LLM:             client,
		Temperature:     temperature,
		MaxOutputTokens: maxOutputTokens,
	}
}

// Generate produces the artifact for the request. It returns a Result with
// non-empty content or an error wrapping ErrGeneration; never both and
// never a partial result. Exactly one remote call is made per request.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	if s.LLM == nil {
		return Result{}, errors.New("missing llm client")
	}
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	var prompt string
	var prefix string
	var err error
	switch req.Kind {
	case KindResume:
		prompt, err = buildResumePrompt(*req.Resume)
	case KindInterviewPack:
		prompt, err = buildInterviewPrompt(*req.Interview)
	case KindDailyPlan:
		prompt, prefix, err = s.preparePlan(*req.Plan)
	}
	if err != nil {
		return Result{}, err
	}

	metrics.IncGenerationStarted()
	start := time.Now()

	text, err := s.LLM.GenerateText(ctx, llm.GenerateInput{
		Prompt:          prompt,
		Temperature:     s.Temperature,
		MaxOutputTokens: s.MaxOutputTokens,
	})
	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.ObserveGenerationDurationMs(durationMs)
	if err != nil {
		metrics.IncGenerationFailed()
		telemetry.Error("generate.failed", map[string]any{
			"kind":        req.Kind,
			"duration_ms": durationMs,
			"error":       err.Error(),
		})
		return Result{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	content := strings.TrimSpace(text)
	if content == "" {
		metrics.IncGenerationFailed()
		return Result{}, fmt.Errorf("%w: %v", ErrGeneration, llm.ErrEmptyCompletion)
	}
	metrics.IncGenerationCompleted()

	telemetry.Info("generate.complete", map[string]any{
		"kind":          req.Kind,
		"duration_ms":   durationMs,
		"content_bytes": len(content),
	})

	return Result{
		ID:          uuid.NewString(),
		Kind:        req.Kind,
		Content:     prefix + content,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// preparePlan computes the schedule locally and returns the tips prompt plus
// the schedule section prepended to the model's tips.
func (s *Service) preparePlan(input PlanInput) (prompt, prefix string, err error) {
	if strings.TrimSpace(input.WorkStart) == "" {
		input.WorkStart = defaultWorkStart
	}
	if strings.TrimSpace(input.WorkEnd) == "" {
		input.WorkEnd = defaultWorkEnd
	}

	entries, err := plan.Schedule(input.Tasks, input.WorkStart, input.WorkEnd)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	prompt, err = buildPlanTipsPrompt(input)
	if err != nil {
		return "", "", err
	}

	prefix = "## Suggested Schedule\n\n" + plan.RenderMarkdown(entries) + "\n## Tips to Work Smarter\n\n"
	return prompt, prefix, nil
}

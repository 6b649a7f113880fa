package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"studybot-backend/internal/llm"
	"studybot-backend/internal/plan"
)

type staticLLM struct {
	resp   string
	err    error
	prompt string
}

func (s *staticLLM) GenerateText(ctx context.Context, input llm.GenerateInput) (string, error) {
	_ = ctx
	s.prompt = input.Prompt
	if s.err != nil {
		return "", s.err
	}
	return s.resp, nil
}

func TestGenerateResume(t *testing.T) {
	client := &staticLLM{resp: "# Asha\n\n**Data Analyst** with SQL and Python experience."}
	svc := NewService(client, 0.7, 4096)

	req := Request{
		Kind: KindResume,
		Resume: &ResumeInput{
			Name:            "Asha",
			Role:            "Data Analyst",
			Skills:          []string{"SQL", "Python"},
			YearsExperience: 2,
		},
	}

	result, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Content == "" {
		t.Fatalf("expected non-empty content")
	}
	if !strings.Contains(result.Content, "# Asha") {
		t.Fatalf("expected heading with name, got:\n%s", result.Content)
	}
	if result.ID == "" || result.GeneratedAt.IsZero() {
		t.Fatalf("expected populated ID and timestamp, got %+v", result)
	}

	// The prompt embeds the candidate fields as plain text.
	for _, want := range []string{"Asha", "Data Analyst", "SQL, Python", "Years of experience: 2"} {
		if !strings.Contains(client.prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, client.prompt)
		}
	}
}

func TestGenerateInterviewPack(t *testing.T) {
	client := &staticLLM{resp: "## Technical\n1. Q1\n2. Q2\n3. Q3\n4. Q4\n5. Q5\n"}
	svc := NewService(client, 0.7, 4096)

	req := Request{
		Kind: KindInterviewPack,
		Interview: &InterviewInput{
			Role:            "Backend Engineer",
			TechnicalCount:  5,
			BehavioralCount: 5,
		},
	}

	result, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for i := 1; i <= 5; i++ {
		if !strings.Contains(result.Content, "Q"+string(rune('0'+i))) {
			t.Fatalf("expected question %d in content:\n%s", i, result.Content)
		}
	}
	if !strings.Contains(client.prompt, "5 technical questions") {
		t.Fatalf("prompt missing question count:\n%s", client.prompt)
	}
	if !strings.Contains(client.prompt, "Backend Engineer") {
		t.Fatalf("prompt missing role:\n%s", client.prompt)
	}
}

func TestGenerateInterviewPackDefaults(t *testing.T) {
	client := &staticLLM{resp: "pack"}
	svc := NewService(client, 0.7, 4096)

	req := Request{
		Kind:      KindInterviewPack,
		Interview: &InterviewInput{Role: "Data Scientist"},
	}
	if _, err := svc.Generate(context.Background(), req); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(client.prompt, "8 technical questions") {
		t.Fatalf("expected default technical count, got:\n%s", client.prompt)
	}
	if !strings.Contains(client.prompt, "5 behavioral questions") {
		t.Fatalf("expected default behavioral count, got:\n%s", client.prompt)
	}
}

func TestGenerateDailyPlan(t *testing.T) {
	client := &staticLLM{resp: "- Batch small tasks together."}
	svc := NewService(client, 0.7, 4096)

	req := Request{
		Kind: KindDailyPlan,
		Plan: &PlanInput{
			Tasks: []plan.Task{
				{Name: "Write report", DurationMinutes: 60, Priority: "H", Deadline: "12:00"},
				{Name: "Review PR", DurationMinutes: 30, Priority: "M", Deadline: "12:00"},
			},
		},
	}

	result, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, want := range []string{"Write report", "Review PR", "Suggested Schedule", "Tips to Work Smarter", "Batch small tasks"} {
		if !strings.Contains(result.Content, want) {
			t.Fatalf("content missing %q:\n%s", want, result.Content)
		}
	}
	// The schedule is computed locally; only the tips come from the model.
	if strings.Contains(client.prompt, "Suggested Schedule") {
		t.Fatalf("schedule table should not be in the prompt:\n%s", client.prompt)
	}
	if !strings.Contains(client.prompt, "Write report (60m, H, deadline 12:00)") {
		t.Fatalf("prompt missing task summary:\n%s", client.prompt)
	}
}

func TestGenerateRemoteFailure(t *testing.T) {
	client := &staticLLM{err: errors.New("request timeout")}
	svc := NewService(client, 0.7, 4096)

	req := Request{
		Kind:   KindResume,
		Resume: &ResumeInput{Name: "Asha", Role: "Data Analyst"},
	}

	result, err := svc.Generate(context.Background(), req)
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
	if result.Content != "" || result.ID != "" {
		t.Fatalf("expected zero result on failure, got %+v", result)
	}
}

func TestGenerateEmptyCompletion(t *testing.T) {
	client := &staticLLM{resp: "   \n"}
	svc := NewService(client, 0.7, 4096)

	req := Request{
		Kind:   KindResume,
		Resume: &ResumeInput{Name: "Asha", Role: "Data Analyst"},
	}

	if _, err := svc.Generate(context.Background(), req); !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration for empty completion, got %v", err)
	}
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	client := &staticLLM{resp: "should not be called"}
	svc := NewService(client, 0.7, 4096)

	tests := []struct {
		name string
		req  Request
	}{
		{name: "missing resume name", req: Request{Kind: KindResume, Resume: &ResumeInput{Role: "Analyst"}}},
		{name: "missing resume role", req: Request{Kind: KindResume, Resume: &ResumeInput{Name: "Asha"}}},
		{name: "missing resume block", req: Request{Kind: KindResume}},
		{name: "missing interview role", req: Request{Kind: KindInterviewPack, Interview: &InterviewInput{}}},
		{name: "no tasks", req: Request{Kind: KindDailyPlan, Plan: &PlanInput{}}},
		{name: "unknown kind", req: Request{Kind: Kind("poem")}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Generate(context.Background(), tt.req); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if client.prompt != "" {
				t.Fatalf("remote call should not happen for invalid input")
			}
		})
	}
}

func TestGenerateRejectsBadWorkWindow(t *testing.T) {
	client := &staticLLM{resp: "tips"}
	svc := NewService(client, 0.7, 4096)

	req := Request{
		Kind: KindDailyPlan,
		Plan: &PlanInput{
			Tasks:     []plan.Task{{Name: "Task", DurationMinutes: 30, Priority: "M"}},
			WorkStart: "18:00",
			WorkEnd:   "09:00",
		},
	}
	if _, err := svc.Generate(context.Background(), req); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inverted window, got %v", err)
	}
}

package generate

import (
	"fmt"
	"strings"
	"time"

	"studybot-backend/internal/plan"
)

// Kind identifies the artifact to generate.
type Kind string

const (
	KindResume        Kind = "resume"
	KindInterviewPack Kind = "interview-pack"
	KindDailyPlan     Kind = "daily-plan"
)

// ParseKind validates a raw kind string.
func ParseKind(raw string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindResume:
		return KindResume, nil
	case KindInterviewPack:
		return KindInterviewPack, nil
	case KindDailyPlan:
		return KindDailyPlan, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, raw)
	}
}

// ResumeInput holds the fields for a resume draft.
type ResumeInput struct {
	Name            string
	Email           string
	Phone           string
	Location        string
	Role            string
	YearsExperience float64
	Style           string
	Skills          []string
	Tools           []string
	Industries      string
	Experience      []string
	Education       []string
}

// InterviewInput holds the fields for an interview Q&A pack.
type InterviewInput struct {
	Role            string
	Difficulty      string
	JobDescription  string
	TechnicalCount  int
	BehavioralCount int
}

// PlanInput holds the fields for a daily plan.
type PlanInput struct {
	Tasks     []plan.Task
	WorkStart string
	WorkEnd   string
}

// Request is a tagged variant: exactly the input matching Kind is set.
// Requests are constructed once and never mutated by the generator.
type Request struct {
	Kind      Kind
	Resume    *ResumeInput
	Interview *InterviewInput
	Plan      *PlanInput
}

// Validate checks that the required fields for the request's kind are
// present. Invalid requests are rejected before any remote call is made.
func (r Request) Validate() error {
	switch r.Kind {
	case KindResume:
		if r.Resume == nil {
			return fmt.Errorf("%w: resume fields are required", ErrInvalidInput)
		}
		if strings.TrimSpace(r.Resume.Name) == "" {
			return fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		if strings.TrimSpace(r.Resume.Role) == "" {
			return fmt.Errorf("%w: target role is required", ErrInvalidInput)
		}
	case KindInterviewPack:
		if r.Interview == nil {
			return fmt.Errorf("%w: interview fields are required", ErrInvalidInput)
		}
		if strings.TrimSpace(r.Interview.Role) == "" {
			return fmt.Errorf("%w: role is required", ErrInvalidInput)
		}
	case KindDailyPlan:
		if r.Plan == nil {
			return fmt.Errorf("%w: plan fields are required", ErrInvalidInput)
		}
		if len(r.Plan.Tasks) == 0 {
			return fmt.Errorf("%w: at least one task is required", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, r.Kind)
	}
	return nil
}

// Result is a generated artifact. Content is never empty on success.
type Result struct {
	ID          string
	Kind        Kind
	Content     string
	GeneratedAt time.Time
}

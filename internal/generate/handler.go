package generate

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"studybot-backend/internal/plan"
	"studybot-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
}

type resumeRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Location        string  `json:"location"`
	Role            string  `json:"role"`
	YearsExperience float64 `json:"yearsExperience"`
	Style           string  `json:"style"`
	Skills          string  `json:"skills"`
	Tools           string  `json:"tools"`
	Industries      string  `json:"industries"`
	Experience      string  `json:"experience"`
	Education       string  `json:"education"`
}

type interviewRequest struct {
	Role            string `json:"role"`
	Difficulty      string `json:"difficulty"`
	JobDescription  string `json:"jobDescription"`
	TechnicalCount  int    `json:"technicalCount"`
	BehavioralCount int    `json:"behavioralCount"`
}

type planRequest struct {
	Tasks     []plan.Task `json:"tasks"`
	TasksText string      `json:"tasksText"`
	WorkStart string      `json:"workStart"`
	WorkEnd   string      `json:"workEnd"`
}

type generateRequest struct {
	Kind      string            `json:"kind"`
	Resume    *resumeRequest    `json:"resume,omitempty"`
	Interview *interviewRequest `json:"interview,omitempty"`
	Plan      *planRequest      `json:"plan,omitempty"`
}

type generateResponse struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generatedAt"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	kind, err := ParseKind(req.Kind)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "kind must be resume, interview-pack or daily-plan", nil)
		return
	}
	c.Set("artifactKind", string(kind))

	result, err := h.Svc.Generate(c.Request.Context(), toRequest(kind, req))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrGeneration):
			respond.Error(c, http.StatusBadGateway, "generation_failed",
				"The model could not produce a result. Please try again.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, generateResponse{
		ID:          result.ID,
		Kind:        result.Kind,
		Content:     result.Content,
		GeneratedAt: result.GeneratedAt,
	})
}

func toRequest(kind Kind, req generateRequest) Request {
	out := Request{Kind: kind}
	switch kind {
	case KindResume:
		if req.Resume != nil {
			out.Resume = &ResumeInput{
				Name:            strings.TrimSpace(req.Resume.Name),
				Email:           strings.TrimSpace(req.Resume.Email),
				Phone:           strings.TrimSpace(req.Resume.Phone),
				Location:        strings.TrimSpace(req.Resume.Location),
				Role:            strings.TrimSpace(req.Resume.Role),
				YearsExperience: req.Resume.YearsExperience,
				Style:           strings.TrimSpace(req.Resume.Style),
				Skills:          splitList(req.Resume.Skills),
				Tools:           splitList(req.Resume.Tools),
				Industries:      strings.TrimSpace(req.Resume.Industries),
				Experience:      splitLines(req.Resume.Experience),
				Education:       splitLines(req.Resume.Education),
			}
		}
	case KindInterviewPack:
		if req.Interview != nil {
			out.Interview = &InterviewInput{
				Role:            strings.TrimSpace(req.Interview.Role),
				Difficulty:      strings.TrimSpace(req.Interview.Difficulty),
				JobDescription:  strings.TrimSpace(req.Interview.JobDescription),
				TechnicalCount:  req.Interview.TechnicalCount,
				BehavioralCount: req.Interview.BehavioralCount,
			}
		}
	case KindDailyPlan:
		if req.Plan != nil {
			tasks := append([]plan.Task(nil), req.Plan.Tasks...)
			tasks = append(tasks, plan.ParseLines(req.Plan.TasksText)...)
			out.Plan = &PlanInput{
				Tasks:     tasks,
				WorkStart: strings.TrimSpace(req.Plan.WorkStart),
				WorkEnd:   strings.TrimSpace(req.Plan.WorkEnd),
			}
		}
	}
	return out
}

// splitList splits comma-separated values, dropping empties.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

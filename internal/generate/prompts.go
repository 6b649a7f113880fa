package generate

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"studybot-backend/internal/plan"
)

var (
	//go:embed prompts/resume_v1.txt
	resumePromptRaw string
	//go:embed prompts/interview_v1.txt
	interviewPromptRaw string
	//go:embed prompts/plan_tips_v1.txt
	planTipsPromptRaw string
)

// Parsed once at package init; reused on every Generate call.
var (
	resumePromptTmpl    = template.Must(template.New("resume_v1").Parse(resumePromptRaw))
	interviewPromptTmpl = template.Must(template.New("interview_v1").Parse(interviewPromptRaw))
	planTipsPromptTmpl  = template.Must(template.New("plan_tips_v1").Parse(planTipsPromptRaw))
)

const (
	defaultStyle           = "Concise"
	defaultDifficulty      = "Medium"
	defaultTechnicalCount  = 8
	defaultBehavioralCount = 5
)

type resumePromptView struct {
	Style           string
	Role            string
	YearsExperience string
	Name            string
	Email           string
	Phone           string
	Location        string
	Skills          string
	Tools           string
	Industries      string
	Experience      string
	Education       string
}

func buildResumePrompt(input ResumeInput) (string, error) {
	view := resumePromptView{
		Style:           orDefault(input.Style, defaultStyle),
		Role:            input.Role,
		YearsExperience: strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", input.YearsExperience), "0"), "."),
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Location:        input.Location,
		Skills:          strings.Join(input.Skills, ", "),
		Tools:           strings.Join(input.Tools, ", "),
		Industries:      orDefault(input.Industries, "General"),
		Experience:      orDefault(strings.Join(input.Experience, "\n"), "N/A"),
		Education:       orDefault(strings.Join(input.Education, "\n"), "N/A"),
	}
	return renderPrompt(resumePromptTmpl, view)
}

type interviewPromptView struct {
	Role            string
	Difficulty      string
	JobDescription  string
	TechnicalCount  int
	BehavioralCount int
}

func buildInterviewPrompt(input InterviewInput) (string, error) {
	view := interviewPromptView{
		Role:            input.Role,
		Difficulty:      orDefault(input.Difficulty, defaultDifficulty),
		JobDescription:  orDefault(input.JobDescription, "N/A"),
		TechnicalCount:  input.TechnicalCount,
		BehavioralCount: input.BehavioralCount,
	}
	if view.TechnicalCount <= 0 {
		view.TechnicalCount = defaultTechnicalCount
	}
	if view.BehavioralCount <= 0 {
		view.BehavioralCount = defaultBehavioralCount
	}
	return renderPrompt(interviewPromptTmpl, view)
}

type planTipsPromptView struct {
	WorkStart string
	WorkEnd   string
	TaskList  string
}

func buildPlanTipsPrompt(input PlanInput) (string, error) {
	lines := make([]string, 0, len(input.Tasks))
	for _, t := range input.Tasks {
		deadline := t.Deadline
		if deadline == "" {
			deadline = "—"
		}
		lines = append(lines, fmt.Sprintf("- %s (%dm, %s, deadline %s)",
			t.Name, t.DurationMinutes, plan.NormalizePriority(t.Priority), deadline))
	}
	view := planTipsPromptView{
		WorkStart: input.WorkStart,
		WorkEnd:   input.WorkEnd,
		TaskList:  strings.Join(lines, "\n"),
	}
	return renderPrompt(planTipsPromptTmpl, view)
}

func renderPrompt(tmpl *template.Template, view any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, view); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", tmpl.Name(), err)
	}
	return b.String(), nil
}

func orDefault(val, def string) string {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return val
}

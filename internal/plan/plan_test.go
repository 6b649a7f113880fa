package plan

import (
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Task
	}{
		{
			name: "full line",
			line: "Code feature X, 90, H, 13:00",
			want: Task{Name: "Code feature X", DurationMinutes: 90, Priority: "H", Deadline: "13:00"},
		},
		{
			name: "no deadline",
			line: "Gym, 60, L",
			want: Task{Name: "Gym", DurationMinutes: 60, Priority: "L"},
		},
		{
			name: "name only",
			line: "Review PR",
			want: Task{Name: "Review PR", DurationMinutes: 60, Priority: "M"},
		},
		{
			name: "bad duration falls back",
			line: "Standup, soon, h",
			want: Task{Name: "Standup", DurationMinutes: 60, Priority: "H"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLine(tt.line); got != tt.want {
				t.Fatalf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestScheduleOrdersByDeadlineThenPriority(t *testing.T) {
	tasks := []Task{
		{Name: "Gym", DurationMinutes: 60, Priority: "L"},
		{Name: "Team meeting", DurationMinutes: 30, Priority: "M", Deadline: "10:30"},
		{Name: "Deep work", DurationMinutes: 120, Priority: "H", Deadline: "12:00"},
		{Name: "Inbox", DurationMinutes: 30, Priority: "H"},
	}

	entries, err := Schedule(tasks, "09:00", "18:00")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	order := make([]string, 0, len(entries))
	for _, e := range entries {
		order = append(order, e.Task)
	}
	want := []string{"Team meeting", "Deep work", "Inbox", "Gym"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	if entries[0].Start != "09:00" || entries[0].End != "09:30" {
		t.Fatalf("first slot = %s-%s, want 09:00-09:30", entries[0].Start, entries[0].End)
	}
	if entries[1].Start != "09:30" || entries[1].End != "11:30" {
		t.Fatalf("second slot = %s-%s, want 09:30-11:30", entries[1].Start, entries[1].End)
	}
}

func TestScheduleMarksOverflow(t *testing.T) {
	tasks := []Task{
		{Name: "Morning block", DurationMinutes: 120, Priority: "H"},
		{Name: "Will not fit", DurationMinutes: 90, Priority: "M"},
	}

	entries, err := Schedule(tasks, "09:00", "11:30")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if entries[0].Overflow {
		t.Fatalf("first task should fit")
	}
	if !entries[1].Overflow {
		t.Fatalf("second task should overflow")
	}
	if entries[1].Start != "" || entries[1].End != "" {
		t.Fatalf("overflow entry should have no slot, got %s-%s", entries[1].Start, entries[1].End)
	}
}

func TestScheduleRejectsBadWindow(t *testing.T) {
	if _, err := Schedule(nil, "late", "18:00"); err == nil {
		t.Fatalf("expected error for invalid start")
	}
	if _, err := Schedule(nil, "18:00", "09:00"); err == nil {
		t.Fatalf("expected error for inverted window")
	}
}

func TestRenderMarkdown(t *testing.T) {
	entries := []Entry{
		{Task: "Write report", Priority: "H", Start: "09:00", End: "10:00", Deadline: "12:00"},
		{Task: "Stretch goal", Priority: "L", Overflow: true},
	}

	md := RenderMarkdown(entries)
	if !strings.Contains(md, "| Write report | H | 09:00 | 10:00 | 12:00 |") {
		t.Fatalf("missing scheduled row:\n%s", md)
	}
	if !strings.Contains(md, "Stretch goal (overflow)") {
		t.Fatalf("missing overflow marker:\n%s", md)
	}
	if !strings.Contains(md, "| — | — | — |") {
		t.Fatalf("overflow row should use placeholders:\n%s", md)
	}
}

func TestParseLines(t *testing.T) {
	raw := "Deep work on project, 120, H, 12:00\n\nTeam meeting, 30, M, 10:30\n"
	tasks := ParseLines(raw)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Name != "Deep work on project" || tasks[1].Name != "Team meeting" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

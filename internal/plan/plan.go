// Package plan builds a deterministic daily schedule from free-form task
// lines. The remote model is only consulted for productivity tips; placement
// of tasks in the work window is computed locally.
package plan

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const clockLayout = "15:04"

// Task is one item to place in the day.
type Task struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Priority        string `json:"priority"`
	Deadline        string `json:"deadline,omitempty"`
}

// Entry is a task placed in (or overflowing) the schedule.
type Entry struct {
	Task     string
	Priority string
	Start    string
	End      string
	Deadline string
	Overflow bool
}

var priorityOrder = map[string]int{"H": 0, "M": 1, "L": 2}

// ParseLine parses a task line of the form
//
//	Task name, duration_minutes, priority(H/M/L), deadline(HH:MM optional)
//
// Missing duration defaults to 60 minutes, missing priority to M and the
// deadline is optional.
func ParseLine(line string) Task {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	task := Task{Name: "Task", DurationMinutes: 60, Priority: "M"}
	if len(parts) > 0 && parts[0] != "" {
		task.Name = parts[0]
	}
	if len(parts) > 1 {
		if dur, err := strconv.Atoi(parts[1]); err == nil && dur > 0 {
			task.DurationMinutes = dur
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		task.Priority = NormalizePriority(parts[2])
	}
	if len(parts) > 3 {
		task.Deadline = parts[3]
	}
	return task
}

// ParseLines parses one task per non-empty line.
func ParseLines(raw string) []Task {
	var tasks []Task
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tasks = append(tasks, ParseLine(line))
	}
	return tasks
}

// NormalizePriority maps arbitrary input to H, M or L (default M).
func NormalizePriority(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "H", "HIGH":
		return "H"
	case "L", "LOW":
		return "L"
	default:
		return "M"
	}
}

// Schedule places tasks in the work window. Tasks with a deadline come
// first, ordered by deadline time, then by priority H > M > L. Placement is
// greedy from the window start; tasks that do not fit are marked overflow.
func Schedule(tasks []Task, workStart, workEnd string) ([]Entry, error) {
	start, err := time.Parse(clockLayout, workStart)
	if err != nil {
		return nil, fmt.Errorf("invalid work start %q: %w", workStart, err)
	}
	end, err := time.Parse(clockLayout, workEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid work end %q: %w", workEnd, err)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("work end %s must be after work start %s", workEnd, workStart)
	}

	sorted := append([]Task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := deadlineKey(sorted[i].Deadline), deadlineKey(sorted[j].Deadline)
		if di != dj {
			return di < dj
		}
		return priorityRank(sorted[i].Priority) < priorityRank(sorted[j].Priority)
	})

	current := start
	entries := make([]Entry, 0, len(sorted))
	for _, task := range sorted {
		entry := Entry{
			Task:     task.Name,
			Priority: NormalizePriority(task.Priority),
			Deadline: task.Deadline,
		}
		taskEnd := current.Add(time.Duration(task.DurationMinutes) * time.Minute)
		if !taskEnd.After(end) {
			entry.Start = current.Format(clockLayout)
			entry.End = taskEnd.Format(clockLayout)
			current = taskEnd
		} else {
			entry.Overflow = true
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// RenderMarkdown renders the schedule as a Markdown table.
func RenderMarkdown(entries []Entry) string {
	var b strings.Builder
	b.WriteString("| Task | Priority | Start | End | Deadline |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, e := range entries {
		name := e.Task
		start, end := e.Start, e.End
		if e.Overflow {
			name += " (overflow)"
			start, end = "—", "—"
		}
		deadline := e.Deadline
		if deadline == "" {
			deadline = "—"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", name, e.Priority, start, end, deadline)
	}
	return b.String()
}

func deadlineKey(deadline string) string {
	if strings.TrimSpace(deadline) == "" {
		return "1|23:59"
	}
	return "0|" + deadline
}

func priorityRank(priority string) int {
	if rank, ok := priorityOrder[NormalizePriority(priority)]; ok {
		return rank
	}
	return 1
}

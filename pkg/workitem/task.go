// Package workitem defines the two kinds of work the back office tracks:
// ad-hoc tasks and recurring pump duties. Records arrive from the backend,
// are normalized once here, and every downstream view works with the
// normalized form.
package workitem

import (
	"strings"
	"time"

	"tableflip.dev/pumpdesk/pkg/calendar"
)

// TaskStatus is the lifecycle label of an ad-hoc task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// Priority buckets an ad-hoc task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Task is an ad-hoc duty assigned to one employee.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	Status      TaskStatus `json:"status"`
	AssignedTo  string     `json:"assignedToEmployeeId"`
	DueDate     Date       `json:"dueDate"`
	Shift       string     `json:"shift,omitempty"`
}

// Normalize fills defaults once at the ingestion boundary so nothing
// downstream has to guess about missing fields.
func (t *Task) Normalize() {
	if t.Status == "" {
		t.Status = TaskPending
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
}

// Overdue reports whether the task's due day has passed without completion.
// A task due exactly today is not overdue.
func (t *Task) Overdue(now time.Time) bool {
	if t.Status == TaskCompleted {
		return false
	}
	due, err := t.DueDate.Day()
	if err != nil {
		return false
	}
	return due.Before(calendar.Midnight(now))
}

// StatusLabel implements filter.Item.
func (t *Task) StatusLabel() string {
	return string(t.Status)
}

// FilterDay implements filter.Item; tasks are filtered on their due date.
func (t *Task) FilterDay() (time.Time, error) {
	return t.DueDate.Day()
}

// SearchText implements filter.Item: every user-visible field, joined, so a
// free-text query can hit any of them.
func (t *Task) SearchText() string {
	return strings.Join([]string{
		t.Title,
		t.Description,
		t.AssignedTo,
		t.Shift,
		string(t.Priority),
		t.DueDate.String(),
		string(t.Status),
	}, " ")
}

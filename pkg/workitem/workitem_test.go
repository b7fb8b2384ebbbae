package workitem

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTaskOverdue(t *testing.T) {
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.Local)

	task := &Task{Status: TaskPending, DueDate: ParseDate("2024-06-11")}
	if !task.Overdue(now) {
		t.Fatalf("task due yesterday should be overdue")
	}

	task.DueDate = ParseDate("2024-06-12")
	if task.Overdue(now) {
		t.Fatalf("task due today is never overdue")
	}

	task.DueDate = ParseDate("2024-06-11")
	task.Status = TaskCompleted
	if task.Overdue(now) {
		t.Fatalf("completed task is never overdue")
	}

	task.Status = TaskPending
	task.DueDate = ParseDate("not a date")
	if task.Overdue(now) {
		t.Fatalf("task with a malformed due date is not flagged overdue")
	}
}

func TestTaskNormalize(t *testing.T) {
	task := &Task{}
	task.Normalize()
	if task.Status != TaskPending {
		t.Fatalf("expected pending default, got %s", task.Status)
	}
	if task.Priority != PriorityMedium {
		t.Fatalf("expected medium default, got %s", task.Priority)
	}
}

func TestDutyNormalizeDefaults(t *testing.T) {
	d := &DailyDuty{ShiftStart: "22:00", ShiftEnd: "06:00"}
	d.Normalize()
	if d.Status != DutyScheduled {
		t.Fatalf("missing status should normalize to SCHEDULED, got %s", d.Status)
	}
	if d.TotalHours != "8.0" {
		t.Fatalf("expected derived total hours 8.0, got %s", d.TotalHours)
	}
}

func TestDutyNormalizeKeepsSuppliedHours(t *testing.T) {
	d := &DailyDuty{ShiftStart: "09:00", ShiftEnd: "17:00", TotalHours: "7.5", Status: DutyActive}
	d.Normalize()
	if d.TotalHours != "7.5" {
		t.Fatalf("supplied total hours should win, got %s", d.TotalHours)
	}
	if d.Status != DutyActive {
		t.Fatalf("normalize should not touch a concrete status")
	}
}

func TestDutyUnmarshalPairedForm(t *testing.T) {
	raw := `{
		"id": "d1",
		"employeeId": "e7",
		"dutyDate": "2024-06-12",
		"assignments": [{"productId": "p1", "gunId": "g1"}],
		"shiftStart": "06:00",
		"shiftEnd": "14:00",
		"status": "ACTIVE"
	}`
	var d DailyDuty
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Assignments) != 1 || d.Assignments[0].GunID != "g1" {
		t.Fatalf("unexpected assignments: %+v", d.Assignments)
	}
	if day, err := d.FilterDay(); err != nil || day.Day() != 12 {
		t.Fatalf("unexpected duty day: %v / %v", day, err)
	}
}

func TestDutyUnmarshalLegacyParallelArrays(t *testing.T) {
	raw := `{
		"id": "d2",
		"employeeId": "e7",
		"dutyDate": "2024-06-12",
		"productIds": ["p1", "p2", "p3"],
		"gunIds": ["g1", "g2"]
	}`
	var d DailyDuty
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []PumpAssignment{
		{ProductID: "p1", GunID: "g1"},
		{ProductID: "p2", GunID: "g2"},
		{ProductID: "p3"},
	}
	if len(d.Assignments) != len(want) {
		t.Fatalf("expected %d assignments, got %d", len(want), len(d.Assignments))
	}
	for i := range want {
		if d.Assignments[i] != want[i] {
			t.Fatalf("assignment %d: expected %+v, got %+v", i, want[i], d.Assignments[i])
		}
	}
}

func TestDutyMalformedDateLoadsButNeverMatches(t *testing.T) {
	var d DailyDuty
	if err := json.Unmarshal([]byte(`{"id":"d3","dutyDate":"someday"}`), &d); err != nil {
		t.Fatalf("a malformed date must not fail the decode: %v", err)
	}
	if _, err := d.FilterDay(); err == nil {
		t.Fatalf("expected a malformed date error from FilterDay")
	}
}

func TestDateRoundTrip(t *testing.T) {
	d := ParseDate("2024-01-09")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"2024-01-09"` {
		t.Fatalf("unexpected marshal: %s", b)
	}
	day, err := d.Day()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.Year() != 2024 || day.Month() != time.January || day.Day() != 9 {
		t.Fatalf("unexpected day: %v", day)
	}
}

func TestSearchTextCoversVisibleFields(t *testing.T) {
	task := &Task{Title: "Clean bay", AssignedTo: "emp-42", Shift: "Morning", Priority: PriorityHigh, Status: TaskPending}
	for _, want := range []string{"Clean bay", "emp-42", "Morning", "high", "pending"} {
		if !strings.Contains(task.SearchText(), want) {
			t.Errorf("task search text missing %q", want)
		}
	}

	duty := &DailyDuty{EmployeeID: "e7", Assignments: []PumpAssignment{{ProductID: "diesel", GunID: "gun-3"}}, ShiftStart: "06:00"}
	for _, want := range []string{"e7", "diesel", "gun-3", "06:00", "SCHEDULED"} {
		if !strings.Contains(duty.SearchText(), want) {
			t.Errorf("duty search text missing %q", want)
		}
	}
}

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"tableflip.dev/pumpdesk/pkg/workitem"
)

var testNow = time.Date(2024, 6, 12, 10, 30, 0, 0, time.Local)

func testEngine() *Engine {
	return &Engine{
		Now:  func() time.Time { return testNow },
		Logf: func(string, ...interface{}) {},
	}
}

func TestTaskForwardTransitions(t *testing.T) {
	e := testEngine()

	task := workitem.Task{ID: "t1", Status: workitem.TaskPending}
	started, err := e.ProposeTask(task, workitem.TaskInProgress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if started.Status != workitem.TaskInProgress {
		t.Fatalf("expected in-progress, got %s", started.Status)
	}
	if task.Status != workitem.TaskPending {
		t.Fatalf("propose must not mutate its input")
	}

	done, err := e.ProposeTask(started, workitem.TaskCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done.Status != workitem.TaskCompleted {
		t.Fatalf("expected completed, got %s", done.Status)
	}
}

func TestTaskNoRegression(t *testing.T) {
	e := testEngine()
	for _, tc := range []struct {
		from, to workitem.TaskStatus
	}{
		{workitem.TaskInProgress, workitem.TaskPending},
		{workitem.TaskCompleted, workitem.TaskInProgress},
		{workitem.TaskCompleted, workitem.TaskPending},
	} {
		_, err := e.ProposeTask(workitem.Task{ID: "t1", Status: tc.from}, tc.to)
		var invalid *InvalidTransitionError
		if !errors.As(err, &invalid) {
			t.Fatalf("%s -> %s: expected InvalidTransitionError, got %v", tc.from, tc.to, err)
		}
	}
}

func TestTaskSkipStrict(t *testing.T) {
	e := testEngine()
	_, err := e.ProposeTask(workitem.Task{ID: "t1", Status: workitem.TaskPending}, workitem.TaskCompleted)
	var invalid *InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("strict engine must reject pending -> completed, got %v", err)
	}
}

func TestTaskSkipPermissive(t *testing.T) {
	e := testEngine()
	e.AllowSkip = true
	logged := false
	e.Logf = func(string, ...interface{}) { logged = true }

	done, err := e.ProposeTask(workitem.Task{ID: "t1", Status: workitem.TaskPending}, workitem.TaskCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done.Status != workitem.TaskCompleted {
		t.Fatalf("expected completed, got %s", done.Status)
	}
	if !logged {
		t.Fatalf("skipping in-progress must be logged")
	}
}

func TestTaskIdempotentReapply(t *testing.T) {
	e := testEngine()
	task := workitem.Task{ID: "t1", Status: workitem.TaskInProgress}
	same, err := e.ProposeTask(task, workitem.TaskInProgress)
	if err != nil {
		t.Fatalf("re-applying the current status is a no-op, got %v", err)
	}
	if same.Status != workitem.TaskInProgress {
		t.Fatalf("unexpected status %s", same.Status)
	}
}

func TestDutyStartGuardedByDate(t *testing.T) {
	e := testEngine()

	tomorrow := workitem.DailyDuty{ID: "d1", Status: workitem.DutyScheduled, DutyDate: workitem.ParseDate("2024-06-13")}
	got, err := e.ProposeDuty(tomorrow, workitem.DutyActive)
	var future *FutureDateError
	if !errors.As(err, &future) {
		t.Fatalf("expected FutureDateError, got %v", err)
	}
	if got.Status != workitem.DutyScheduled {
		t.Fatalf("failed guard must leave status unchanged, got %s", got.Status)
	}

	// Today and yesterday both start fine.
	for _, date := range []string{"2024-06-12", "2024-06-11"} {
		duty := workitem.DailyDuty{ID: "d1", Status: workitem.DutyScheduled, DutyDate: workitem.ParseDate(date)}
		started, err := e.ProposeDuty(duty, workitem.DutyActive)
		if err != nil {
			t.Fatalf("duty dated %s should start: %v", date, err)
		}
		if started.Status != workitem.DutyActive {
			t.Fatalf("expected ACTIVE, got %s", started.Status)
		}
	}
}

func TestDutyStartLateInTheDay(t *testing.T) {
	// The guard compares calendar days, not raw timestamps: a duty dated
	// today must start even when the clock is just before midnight.
	e := testEngine()
	e.Now = func() time.Time { return time.Date(2024, 6, 12, 23, 59, 0, 0, time.Local) }
	duty := workitem.DailyDuty{ID: "d1", Status: workitem.DutyScheduled, DutyDate: workitem.ParseDate("2024-06-12")}
	if _, err := e.ProposeDuty(duty, workitem.DutyActive); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDutyStartMalformedDate(t *testing.T) {
	e := testEngine()
	duty := workitem.DailyDuty{ID: "d1", Status: workitem.DutyScheduled, DutyDate: workitem.ParseDate("??")}
	if _, err := e.ProposeDuty(duty, workitem.DutyActive); err == nil {
		t.Fatalf("a duty with an unparseable date must not start")
	}
}

func TestDutyStatusDefaultsToScheduled(t *testing.T) {
	e := testEngine()
	duty := workitem.DailyDuty{ID: "d1", DutyDate: workitem.ParseDate("2024-06-12")}
	started, err := e.ProposeDuty(duty, workitem.DutyActive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if started.Status != workitem.DutyActive {
		t.Fatalf("expected ACTIVE, got %s", started.Status)
	}
}

func TestDutyCompleteConfirmation(t *testing.T) {
	e := testEngine()
	duty := workitem.DailyDuty{ID: "d1", Status: workitem.DutyActive, DutyDate: workitem.ParseDate("2024-06-12")}

	e.Confirm = func(workitem.DailyDuty) bool { return false }
	got, err := e.ProposeDuty(duty, workitem.DutyCompleted)
	if !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
	if got.Status != workitem.DutyActive {
		t.Fatalf("declined confirmation must leave status unchanged")
	}

	e.Confirm = func(workitem.DailyDuty) bool { return true }
	done, err := e.ProposeDuty(duty, workitem.DutyCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done.Status != workitem.DutyCompleted {
		t.Fatalf("expected COMPLETED, got %s", done.Status)
	}
}

func TestDutyInvalidTransitions(t *testing.T) {
	e := testEngine()
	for _, tc := range []struct {
		from, to workitem.DutyStatus
	}{
		{workitem.DutyCompleted, workitem.DutyActive},
		{workitem.DutyCompleted, workitem.DutyScheduled},
		{workitem.DutyCancelled, workitem.DutyActive},
		{workitem.DutyScheduled, workitem.DutyCompleted},
	} {
		duty := workitem.DailyDuty{ID: "d1", Status: tc.from, DutyDate: workitem.ParseDate("2024-06-12")}
		_, err := e.ProposeDuty(duty, tc.to)
		var invalid *InvalidTransitionError
		if !errors.As(err, &invalid) {
			t.Fatalf("%s -> %s: expected InvalidTransitionError, got %v", tc.from, tc.to, err)
		}
		if invalid.From != string(tc.from) || invalid.To != string(tc.to) {
			t.Fatalf("error must name both states, got %v", invalid)
		}
	}
}

func TestDutyCancel(t *testing.T) {
	e := testEngine()
	for _, from := range []workitem.DutyStatus{workitem.DutyScheduled, workitem.DutyActive} {
		duty := workitem.DailyDuty{ID: "d1", Status: from, DutyDate: workitem.ParseDate("2024-06-12")}
		got, err := e.ProposeDuty(duty, workitem.DutyCancelled)
		if err != nil {
			t.Fatalf("cancel from %s: %v", from, err)
		}
		if got.Status != workitem.DutyCancelled {
			t.Fatalf("expected CANCELLED, got %s", got.Status)
		}
	}
}

func TestCommitTaskSwapsOnlyOnSuccess(t *testing.T) {
	e := testEngine()
	local := workitem.Task{ID: "t1", Status: workitem.TaskPending}
	proposed, err := e.ProposeTask(local, workitem.TaskInProgress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	boom := fmt.Errorf("backend rejected the write")
	err = CommitTask(context.Background(), &local, proposed, func(context.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected persist error, got %v", err)
	}
	if local.Status != workitem.TaskPending {
		t.Fatalf("failed persist must leave the local copy unchanged")
	}

	if err := CommitTask(context.Background(), &local, proposed, func(context.Context) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local.Status != workitem.TaskInProgress {
		t.Fatalf("successful persist must swap in the proposal")
	}
}

func TestCommitDutySwapsOnlyOnSuccess(t *testing.T) {
	e := testEngine()
	local := workitem.DailyDuty{ID: "d1", Status: workitem.DutyScheduled, DutyDate: workitem.ParseDate("2024-06-12")}
	proposed, err := e.ProposeDuty(local, workitem.DutyActive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	boom := fmt.Errorf("backend rejected the write")
	if err := CommitDuty(context.Background(), &local, proposed, func(context.Context) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected persist error, got %v", err)
	}
	if local.Status != workitem.DutyScheduled {
		t.Fatalf("failed persist must leave the local copy unchanged")
	}

	if err := CommitDuty(context.Background(), &local, proposed, func(context.Context) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local.Status != workitem.DutyActive {
		t.Fatalf("successful persist must swap in the proposal")
	}
}

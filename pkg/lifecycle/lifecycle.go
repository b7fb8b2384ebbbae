// Package lifecycle validates and applies status transitions for tasks and
// daily duties. Transitions are two-phase: Propose returns the updated value
// without touching the input, and Commit swaps it into place only after the
// backend write succeeds, so a rejected write never leaves a half-applied
// status behind.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"tableflip.dev/pumpdesk/pkg/calendar"
	"tableflip.dev/pumpdesk/pkg/workitem"
)

// InvalidTransitionError reports a status that is not reachable from the
// item's current status.
type InvalidTransitionError struct {
	Kind string
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: invalid transition %s -> %s", e.Kind, e.From, e.To)
}

// FutureDateError reports an attempt to start a duty scheduled after today.
type FutureDateError struct {
	DutyDate time.Time
}

func (e *FutureDateError) Error() string {
	return fmt.Sprintf("duty scheduled for %s cannot be started before its day", calendar.FormatDate(e.DutyDate))
}

// ErrNotConfirmed is returned when a confirmation hook declines a duty
// completion.
var ErrNotConfirmed = errors.New("duty completion not confirmed")

// Engine holds the transition policy shared by every screen.
type Engine struct {
	// AllowSkip permits pending -> completed without passing through
	// in-progress. Every skip taken is logged.
	AllowSkip bool

	// Confirm, when set, must approve a duty completion before it applies.
	Confirm func(workitem.DailyDuty) bool

	// Logf receives engine warnings; log.Printf when nil.
	Logf func(format string, args ...interface{})

	// Now is the clock used for date guards; time.Now when nil.
	Now func() time.Time
}

func New() *Engine {
	return &Engine{}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) logf(format string, args ...interface{}) {
	if e.Logf != nil {
		e.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// ProposeTask validates a task transition and returns the updated value.
// Re-applying the current status is a no-op, which keeps double-submitted
// button clicks harmless.
func (e *Engine) ProposeTask(t workitem.Task, to workitem.TaskStatus) (workitem.Task, error) {
	from := t.Status
	if from == "" {
		from = workitem.TaskPending
	}
	if to == from {
		return t, nil
	}

	ok := false
	switch {
	case from == workitem.TaskPending && to == workitem.TaskInProgress:
		ok = true
	case from == workitem.TaskInProgress && to == workitem.TaskCompleted:
		ok = true
	case from == workitem.TaskPending && to == workitem.TaskCompleted:
		if e.AllowSkip {
			e.logf("task %s: completing directly from pending, skipping in-progress", t.ID)
			ok = true
		}
	}
	if !ok {
		return t, &InvalidTransitionError{Kind: "task", From: string(from), To: string(to)}
	}

	t.Status = to
	return t, nil
}

// ProposeDuty validates a duty transition and returns the updated value.
// Starting a duty is guarded: a duty dated after today cannot become ACTIVE.
func (e *Engine) ProposeDuty(d workitem.DailyDuty, to workitem.DutyStatus) (workitem.DailyDuty, error) {
	from := d.Status
	if from == "" {
		from = workitem.DutyScheduled
	}
	if to == from {
		return d, nil
	}

	switch {
	case from == workitem.DutyScheduled && to == workitem.DutyActive:
		day, err := d.DutyDate.Day()
		if err != nil {
			return d, err
		}
		if day.After(calendar.Midnight(e.now())) {
			return d, &FutureDateError{DutyDate: day}
		}
	case from == workitem.DutyActive && to == workitem.DutyCompleted:
		if e.Confirm != nil && !e.Confirm(d) {
			return d, ErrNotConfirmed
		}
	case from == workitem.DutyScheduled && to == workitem.DutyCancelled:
	case from == workitem.DutyActive && to == workitem.DutyCancelled:
	default:
		return d, &InvalidTransitionError{Kind: "duty", From: string(from), To: string(to)}
	}

	d.Status = to
	return d, nil
}

// CommitTask persists a proposed task through persist and swaps it into the
// local copy only on success.
func CommitTask(ctx context.Context, local *workitem.Task, proposed workitem.Task, persist func(context.Context) error) error {
	if err := persist(ctx); err != nil {
		return err
	}
	*local = proposed
	return nil
}

// CommitDuty persists a proposed duty through persist and swaps it into the
// local copy only on success.
func CommitDuty(ctx context.Context, local *workitem.DailyDuty, proposed workitem.DailyDuty, persist func(context.Context) error) error {
	if err := persist(ctx); err != nil {
		return err
	}
	*local = proposed
	return nil
}

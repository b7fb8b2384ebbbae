// Package start provides the runner logic for starting a task or duty.
package start

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/pumpdesk/pkg/api"
	"tableflip.dev/pumpdesk/pkg/lifecycle"
	"tableflip.dev/pumpdesk/pkg/printers"
	"tableflip.dev/pumpdesk/pkg/workitem"
)

// Start moves a task to in-progress or a duty to ACTIVE.
type Start struct {
	ID     string
	OrgID  string
	Kind   workitem.Kind
	ShowID bool

	Engine  *lifecycle.Engine
	Service api.Service
}

func (n *Start) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not start, no backend")
	}
	if n.Engine == nil {
		n.Engine = lifecycle.New()
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	switch n.Kind {
	case workitem.KindDuty:
		duty, err := findDuty(ctx, n.Service, n.OrgID, n.ID)
		if err != nil {
			return err
		}
		proposed, err := n.Engine.ProposeDuty(*duty, workitem.DutyActive)
		if err != nil {
			return err
		}
		err = lifecycle.CommitDuty(ctx, duty, proposed, func(ctx context.Context) error {
			return n.Service.UpdateDailyDutyStatus(ctx, n.OrgID, duty.ID, proposed.Status)
		})
		if err != nil {
			return err
		}
		pp.Title("Duty started")
		pp.Duties(duty)
	default:
		task, err := findTask(ctx, n.Service, n.OrgID, n.ID)
		if err != nil {
			return err
		}
		proposed, err := n.Engine.ProposeTask(*task, workitem.TaskInProgress)
		if err != nil {
			return err
		}
		err = lifecycle.CommitTask(ctx, task, proposed, func(ctx context.Context) error {
			return n.Service.UpdateTaskStatus(ctx, n.OrgID, task.ID, proposed.Status)
		})
		if err != nil {
			return err
		}
		pp.Title("Task started")
		pp.Tasks(task)
	}
	return nil
}

func findTask(ctx context.Context, s api.Service, orgID, id string) (*workitem.Task, error) {
	tasks, err := s.Tasks(ctx, api.TaskQuery{OrgID: orgID})
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, fmt.Errorf("task %s not found", id)
}

func findDuty(ctx context.Context, s api.Service, orgID, id string) (*workitem.DailyDuty, error) {
	duties, err := s.DailyDuties(ctx, api.DutyQuery{OrgID: orgID})
	if err != nil {
		return nil, err
	}
	for i := range duties {
		if duties[i].ID == id {
			return &duties[i], nil
		}
	}
	return nil, fmt.Errorf("duty %s not found", id)
}

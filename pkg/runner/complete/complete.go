// Package complete provides the runner logic for completing a task or duty.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/pumpdesk/pkg/api"
	"tableflip.dev/pumpdesk/pkg/lifecycle"
	"tableflip.dev/pumpdesk/pkg/printers"
	"tableflip.dev/pumpdesk/pkg/workitem"
)

// Complete moves a task to completed or a duty to COMPLETED. Duty completion
// goes through the engine's confirmation hook when one is configured.
type Complete struct {
	ID     string
	OrgID  string
	Kind   workitem.Kind
	ShowID bool

	Engine  *lifecycle.Engine
	Service api.Service
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no backend")
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
		proposed, err := n.Engine.ProposeDuty(*duty, workitem.DutyCompleted)
		if err != nil {
			return err
		}
		err = lifecycle.CommitDuty(ctx, duty, proposed, func(ctx context.Context) error {
			return n.Service.UpdateDailyDutyStatus(ctx, n.OrgID, duty.ID, proposed.Status)
		})
		if err != nil {
			return err
		}
		pp.Title("Duty completed")
		pp.Duties(duty)
	default:
		task, err := findTask(ctx, n.Service, n.OrgID, n.ID)
		if err != nil {
			return err
		}
		proposed, err := n.Engine.ProposeTask(*task, workitem.TaskCompleted)
		if err != nil {
			return err
		}
		err = lifecycle.CommitTask(ctx, task, proposed, func(ctx context.Context) error {
			return n.Service.UpdateTaskStatus(ctx, n.OrgID, task.ID, proposed.Status)
		})
		if err != nil {
			return err
		}
		pp.Title("Task completed")
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

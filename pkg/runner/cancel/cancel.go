// Package cancel provides the runner logic for cancelling a daily duty.
package cancel

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/pumpdesk/pkg/api"
	"tableflip.dev/pumpdesk/pkg/lifecycle"
	"tableflip.dev/pumpdesk/pkg/printers"
	"tableflip.dev/pumpdesk/pkg/workitem"
)

// Cancel moves a duty to CANCELLED. Tasks have no cancelled state.
type Cancel struct {
	ID     string
	OrgID  string
	ShowID bool

	Engine  *lifecycle.Engine
	Service api.Service
}

func (n *Cancel) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not cancel, no backend")
	}
	if n.Engine == nil {
		n.Engine = lifecycle.New()
	}

	duties, err := n.Service.DailyDuties(ctx, api.DutyQuery{OrgID: n.OrgID})
	if err != nil {
		return err
	}
	var duty *workitem.DailyDuty
	for i := range duties {
		if duties[i].ID == n.ID {
			duty = &duties[i]
			break
		}
	}
	if duty == nil {
		return fmt.Errorf("duty %s not found", n.ID)
	}

	proposed, err := n.Engine.ProposeDuty(*duty, workitem.DutyCancelled)
	if err != nil {
		return err
	}
	err = lifecycle.CommitDuty(ctx, duty, proposed, func(ctx context.Context) error {
		return n.Service.UpdateDailyDutyStatus(ctx, n.OrgID, duty.ID, proposed.Status)
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title("Duty cancelled")
	pp.Duties(duty)
	return nil
}

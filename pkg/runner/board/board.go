// Package board provides the runner logic for the interactive duty board.
package board

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/pumpdesk/pkg/api"
	"tableflip.dev/pumpdesk/pkg/workitem"
)

// Board runs the interactive duty dashboard for one org.
type Board struct {
	OrgID      string
	EmployeeID string
	PageSize   int

	Service api.Service

	// Now is the reference clock for date filters; time.Now when nil.
	Now func() time.Time
}

func (n *Board) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not open the board, no backend")
	}

	duties, err := n.Service.DailyDuties(ctx, api.DutyQuery{OrgID: n.OrgID, EmployeeID: n.EmployeeID})
	if err != nil {
		return err
	}
	refs := make([]*workitem.DailyDuty, len(duties))
	for i := range duties {
		refs[i] = &duties[i]
	}

	pageSize := n.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	now := n.Now
	if now == nil {
		now = time.Now
	}

	p := tea.NewProgram(newModel(refs, pageSize, now))
	_, err = p.Run()
	return err
}

// Package get provides the runner logic for listing tasks and duties.
package get

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/pumpdesk/pkg/api"
	"tableflip.dev/pumpdesk/pkg/filter"
	"tableflip.dev/pumpdesk/pkg/paginate"
	"tableflip.dev/pumpdesk/pkg/printers"
	"tableflip.dev/pumpdesk/pkg/store"
	"tableflip.dev/pumpdesk/pkg/workitem"
)

// Get lists one page of tasks or duties after filtering.
type Get struct {
	Kind       workitem.Kind
	OrgID      string
	EmployeeID string
	ShowID     bool

	Filter   filter.Config
	Page     int
	PageSize int

	// Cached renders the last snapshot instead of fetching. When a fetch
	// fails and a snapshot exists, the runner falls back to it with a note.
	Cached bool

	Service   api.Service
	Snapshots store.Snapshots

	// Now is the reference clock for date filters; time.Now when nil.
	Now func() time.Time
}

func (n *Get) now() time.Time {
	if n.Now != nil {
		return n.Now()
	}
	return time.Now()
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil && n.Snapshots == nil {
		return errors.New("can not get, no backend and no cache")
	}

	fmt.Println("")
	switch n.Kind {
	case workitem.KindDuty:
		return n.duties(ctx)
	default:
		return n.tasks(ctx)
	}
}

func (n *Get) tasks(ctx context.Context) error {
	items, err := n.fetchTasks(ctx)
	if err != nil {
		return err
	}

	visible := filter.ApplyAt(items, n.Filter, n.now(), warnf)
	page, total := paginate.Page(visible, n.Page, n.PageSize)

	pp := printers.PrettyPrint{ShowID: n.ShowID, Now: n.Now}
	pp.TitleWithPage("Tasks", n.Page, total, len(visible))
	pp.Tasks(page...)
	return nil
}

func (n *Get) duties(ctx context.Context) error {
	items, err := n.fetchDuties(ctx)
	if err != nil {
		return err
	}

	visible := filter.ApplyAt(items, n.Filter, n.now(), warnf)
	page, total := paginate.Page(visible, n.Page, n.PageSize)

	pp := printers.PrettyPrint{ShowID: n.ShowID, Now: n.Now}
	pp.Products, pp.Guns = n.lookups(ctx)
	pp.TitleWithPage("Daily duties", n.Page, total, len(visible))
	pp.Duties(page...)
	return nil
}

func (n *Get) fetchTasks(ctx context.Context) ([]*workitem.Task, error) {
	if n.Cached || n.Service == nil {
		if n.Snapshots == nil {
			return nil, errors.New("no cache configured")
		}
		cached, err := n.Snapshots.Tasks(n.OrgID)
		if err != nil {
			return nil, err
		}
		return refs(cached), nil
	}

	fetched, err := n.Service.Tasks(ctx, api.TaskQuery{OrgID: n.OrgID, EmployeeID: n.EmployeeID})
	if err != nil {
		if n.Snapshots != nil {
			if cached, cacheErr := n.Snapshots.Tasks(n.OrgID); cacheErr == nil {
				warnf("backend unreachable, using cached tasks: %v", err)
				return refs(cached), nil
			}
		}
		return nil, err
	}
	if n.Snapshots != nil {
		if err := n.Snapshots.SaveTasks(n.OrgID, fetched); err != nil {
			warnf("could not cache tasks: %v", err)
		}
	}
	return refs(fetched), nil
}

func (n *Get) fetchDuties(ctx context.Context) ([]*workitem.DailyDuty, error) {
	if n.Cached || n.Service == nil {
		if n.Snapshots == nil {
			return nil, errors.New("no cache configured")
		}
		cached, err := n.Snapshots.Duties(n.OrgID)
		if err != nil {
			return nil, err
		}
		return refs(cached), nil
	}

	fetched, err := n.Service.DailyDuties(ctx, api.DutyQuery{OrgID: n.OrgID, EmployeeID: n.EmployeeID})
	if err != nil {
		if n.Snapshots != nil {
			if cached, cacheErr := n.Snapshots.Duties(n.OrgID); cacheErr == nil {
				warnf("backend unreachable, using cached duties: %v", err)
				return refs(cached), nil
			}
		}
		return nil, err
	}
	if n.Snapshots != nil {
		if err := n.Snapshots.SaveDuties(n.OrgID, fetched); err != nil {
			warnf("could not cache duties: %v", err)
		}
	}
	return refs(fetched), nil
}

// lookups loads the id-to-name maps for duty rows; the listing still works
// without them, rows just show raw ids.
func (n *Get) lookups(ctx context.Context) (map[string]string, map[string]string) {
	if n.Service == nil {
		return nil, nil
	}
	products := map[string]string{}
	if list, err := n.Service.Products(ctx, n.OrgID); err == nil {
		for _, p := range list {
			products[p.ID] = p.Name
		}
	}
	guns := map[string]string{}
	if list, err := n.Service.Guns(ctx, n.OrgID); err == nil {
		for _, g := range list {
			guns[g.ID] = g.Label
		}
	}
	return products, guns
}

func refs[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

func warnf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

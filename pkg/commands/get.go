package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/pumpdesk/pkg/commands/options"
	"tableflip.dev/pumpdesk/pkg/filter"
	"tableflip.dev/pumpdesk/pkg/runner/get"
	"tableflip.dev/pumpdesk/pkg/workitem"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OrgOptions{}
	fo := &options.FilterOptions{}
	po := &options.PageOptions{}
	io := &options.IDOptions{}
	cached := false

	var kind workitem.Kind

	cmd := &cobra.Command{
		Use:     "get [tasks|duties]",
		Aliases: []string{"list", "ls"},
		Short:   "get tasks or daily duties",
		Example: `
pumpdesk get tasks --tab pending --dates week
pumpdesk get duties --dates today --employee e7
pumpdesk get duties --from 2024-06-01 --to 2024-06-30 --page 2
`,
		ValidArgs: []string{"tasks", "duties"},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a kind: tasks or duties")
			}
			k, ok := workitem.KindForAlias(args[0])
			if !ok {
				return fmt.Errorf("unknown kind %q", args[0])
			}
			kind = k
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, svc, snaps, err := backend()
			if err != nil {
				return err
			}
			org, err := orgOrDefault(oo.Org, cfg)
			if err != nil {
				return err
			}
			dates, err := fo.Range()
			if err != nil {
				return err
			}

			g := get.Get{
				Kind:       kind,
				OrgID:      org,
				EmployeeID: oo.Employee,
				ShowID:     io.ShowID,
				Filter: filter.Config{
					Tab:   fo.Tab,
					Query: fo.Search,
					Dates: dates,
				},
				Page:      po.Page - 1,
				PageSize:  po.PageSize,
				Cached:    cached,
				Service:   svc,
				Snapshots: snaps,
			}
			return g.Do(context.Background())
		},
	}

	options.AddOrgArgs(cmd, oo)
	options.AddFilterArgs(cmd, fo)
	options.AddPageArgs(cmd, po)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&cached, "cached", false,
		"Render the last snapshot instead of fetching.")

	topLevel.AddCommand(cmd)
}

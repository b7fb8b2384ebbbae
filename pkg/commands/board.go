package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pumpdesk/pkg/commands/options"
	"tableflip.dev/pumpdesk/pkg/runner/board"
)

func addBoard(topLevel *cobra.Command) {
	oo := &options.OrgOptions{}
	po := &options.PageOptions{}

	cmd := &cobra.Command{
		Use:   "board",
		Short: "interactive duty board",
		Example: `
pumpdesk board
pumpdesk board --employee e7 --page-size 15
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, svc, _, err := backend()
			if err != nil {
				return err
			}
			org, err := orgOrDefault(oo.Org, cfg)
			if err != nil {
				return err
			}

			b := board.Board{
				OrgID:      org,
				EmployeeID: oo.Employee,
				PageSize:   po.PageSize,
				Service:    svc,
			}
			return b.Do(context.Background())
		},
	}

	options.AddOrgArgs(cmd, oo)
	options.AddPageArgs(cmd, po)

	topLevel.AddCommand(cmd)
}

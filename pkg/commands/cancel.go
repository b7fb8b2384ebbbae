package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/pumpdesk/pkg/commands/options"
	"tableflip.dev/pumpdesk/pkg/lifecycle"
	"tableflip.dev/pumpdesk/pkg/runner/cancel"
)

func addCancel(topLevel *cobra.Command) {
	oo := &options.OrgOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "cancel <duty id>",
		Short: "cancel a daily duty",
		Example: `
pumpdesk cancel 8b99dca0
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a duty id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, svc, _, err := backend()
			if err != nil {
				return err
			}
			org, err := orgOrDefault(oo.Org, cfg)
			if err != nil {
				return err
			}

			c := cancel.Cancel{
				ID:      io.ID,
				OrgID:   org,
				ShowID:  io.ShowID,
				Engine:  lifecycle.New(),
				Service: svc,
			}
			return c.Do(context.Background())
		},
	}

	options.AddOrgArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/pumpdesk/pkg/commands/options"
	"tableflip.dev/pumpdesk/pkg/lifecycle"
	"tableflip.dev/pumpdesk/pkg/runner/start"
	"tableflip.dev/pumpdesk/pkg/workitem"
)

func addStart(topLevel *cobra.Command) {
	oo := &options.OrgOptions{}
	io := &options.IDOptions{}

	var kind workitem.Kind

	cmd := &cobra.Command{
		Use:   "start [task|duty] <id>",
		Short: "start a task or duty",
		Example: `
pumpdesk start task 171dff69
pumpdesk start duty 8b99dca0
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a kind and an id")
			}
			k, ok := workitem.KindForAlias(args[0])
			if !ok {
				return fmt.Errorf("unknown kind %q", args[0])
			}
			kind = k
			io.ID = args[1]
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

			s := start.Start{
				ID:      io.ID,
				OrgID:   org,
				Kind:    kind,
				ShowID:  io.ShowID,
				Engine:  &lifecycle.Engine{AllowSkip: cfg.AllowSkip()},
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOrgArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pumpdesk/pkg/commands/options"
	"tableflip.dev/pumpdesk/pkg/lifecycle"
	"tableflip.dev/pumpdesk/pkg/runner/complete"
	"tableflip.dev/pumpdesk/pkg/workitem"
)

func addComplete(topLevel *cobra.Command) {
	oo := &options.OrgOptions{}
	io := &options.IDOptions{}
	yes := false

	var kind workitem.Kind

	cmd := &cobra.Command{
		Use:     "complete [task|duty] <id>",
		Aliases: []string{"completed", "done"},
		Short:   "complete a task or duty",
		Example: `
pumpdesk complete task 171dff69
pumpdesk complete duty 8b99dca0 --yes
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

			engine := &lifecycle.Engine{AllowSkip: cfg.AllowSkip()}
			if !yes {
				engine.Confirm = confirmDuty
			}

			c := complete.Complete{
				ID:      io.ID,
				OrgID:   org,
				Kind:    kind,
				ShowID:  io.ShowID,
				Engine:  engine,
				Service: svc,
			}
			return c.Do(context.Background())
		},
	}

	options.AddOrgArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false,
		"Complete without asking for confirmation.")

	topLevel.AddCommand(cmd)
}

// confirmDuty blocks for a yes/no answer before a duty completion applies.
func confirmDuty(d workitem.DailyDuty) bool {
	fmt.Printf("Complete duty %s on %s? [y/N]: ", d.ID, d.DutyDate)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

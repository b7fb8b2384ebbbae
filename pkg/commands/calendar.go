package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/pumpdesk/pkg/api"
	"tableflip.dev/pumpdesk/pkg/calendar"
	"tableflip.dev/pumpdesk/pkg/commands/options"
	"tableflip.dev/pumpdesk/pkg/printers"
	"tableflip.dev/pumpdesk/pkg/workitem"
)

func addCalendar(topLevel *cobra.Command) {
	oo := &options.OrgOptions{}
	on := ""

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "month view of duty coverage",
		Example: `
pumpdesk calendar
pumpdesk calendar --on 2024-06-01
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

			month := time.Now()
			if on != "" {
				month, err = calendar.ParseLocalDate(on)
				if err != nil {
					return err
				}
			}

			duties, err := svc.DailyDuties(context.Background(), api.DutyQuery{OrgID: org, EmployeeID: oo.Employee})
			if err != nil {
				return err
			}
			refs := make([]*workitem.DailyDuty, len(duties))
			for i := range duties {
				refs[i] = &duties[i]
			}

			pp := printers.PrettyPrint{}
			fmt.Println("")
			pp.Calendar(month, refs...)
			return nil
		},
	}

	options.AddOrgArgs(cmd, oo)
	cmd.Flags().StringVar(&on, "on", "",
		`Any day of the month to show, example: --on="2024-06-01".`)

	topLevel.AddCommand(cmd)
}

// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pumpdesk/pkg/calendar"
	"tableflip.dev/pumpdesk/pkg/datefilter"
)

// FilterOptions captures the list-filter flags shared by the list commands.
type FilterOptions struct {
	Tab    string
	Search string
	Dates  string
	From   string
	To     string
}

// AddFilterArgs wires filter-related flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Tab, "tab", "t", "all",
		"Keep items with this status.")
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Keep items containing this text.")
	cmd.Flags().StringVar(&o.Dates, "dates", "all",
		"Date range: all, today, week, month or custom.")
	cmd.Flags().StringVar(&o.From, "from", "",
		`Custom range start, example: --from="2024-06-01".`)
	cmd.Flags().StringVar(&o.To, "to", "",
		`Custom range end, example: --to="2024-06-30".`)
}

// Range resolves the date flags into a predicate. Supplying either custom
// bound implies custom mode.
func (o *FilterOptions) Range() (datefilter.Range, error) {
	mode := datefilter.ModeForAlias(o.Dates)
	if o.From != "" || o.To != "" {
		mode = datefilter.Custom
	}

	r := datefilter.Range{Mode: mode}
	if mode != datefilter.Custom {
		return r, nil
	}
	if o.From != "" {
		from, err := calendar.ParseLocalDate(o.From)
		if err != nil {
			return r, err
		}
		r.Start = &from
	}
	if o.To != "" {
		to, err := calendar.ParseLocalDate(o.To)
		if err != nil {
			return r, err
		}
		r.End = &to
	}
	return r, nil
}

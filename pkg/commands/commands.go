package commands

import (
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/pumpdesk/pkg/api"
	"tableflip.dev/pumpdesk/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "pumpdesk",
		Short: base.Wrap80("Fuel-station duty and task back office on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGet(topLevel)
	addStart(topLevel)
	addComplete(topLevel)
	addCancel(topLevel)
	addBoard(topLevel)
	addCalendar(topLevel)
	addVersion(topLevel)
}

// backend loads the config and builds the API client and snapshot cache
// every command shares.
func backend() (store.Config, api.Service, store.Snapshots, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	snaps, err := store.Load(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, api.NewClient(cfg.APIURL(), cfg.Token()), snaps, nil
}

func orgOrDefault(flag string, cfg store.Config) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if cfg.Org() != "" {
		return cfg.Org(), nil
	}
	return "", errors.New("no org selected, pass --org or set org in the config")
}

package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each item.")
}

// OrgOptions scopes a command to one organization and, optionally, one
// employee.
type OrgOptions struct {
	Org      string
	Employee string
}

func AddOrgArgs(cmd *cobra.Command, o *OrgOptions) {
	cmd.Flags().StringVarP(&o.Org, "org", "o", "",
		"Organization id; defaults to the configured org.")
	cmd.Flags().StringVarP(&o.Employee, "employee", "e", "",
		"Only items assigned to this employee.")
}

// PageOptions captures pagination flags.
type PageOptions struct {
	Page     int
	PageSize int
}

func AddPageArgs(cmd *cobra.Command, o *PageOptions) {
	cmd.Flags().IntVar(&o.Page, "page", 1,
		"Page to show, starting from 1.")
	cmd.Flags().IntVar(&o.PageSize, "page-size", 10,
		"Items per page.")
}

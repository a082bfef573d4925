package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"coachline.com/backoffice/auth"
)

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "List the permissions the API checks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		catalogue := auth.PermissionCatalogue()
		names := make([]string, 0, len(catalogue))
		for name := range catalogue {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", name, catalogue[name])
		}
	},
}

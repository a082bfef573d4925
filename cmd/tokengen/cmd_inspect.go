package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"coachline.com/backoffice/auth"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <token>",
	Short: "Print the claims of a token without verifying it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token := strings.TrimPrefix(args[0], auth.BearerPrefix)
		claims, err := auth.DecodeClaims(token)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(claims)
	},
}

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"coachline.com/backoffice/auth"
)

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tokengen",
	Short: "Issue and inspect back-office bearer tokens",
	Long: `tokengen mints development tokens in the claim shape the back-office
API reads, and decodes existing tokens the same way the API does.

Examples:
  tokengen issue --sub admin-1 --primary-role 1
  tokengen issue --sub ops-7 --permission jobs.create --permission jobs.update
  tokengen inspect eyJhbGciOi...
  tokengen permissions`,
	Version:      auth.Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(issueCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(permissionsCmd)

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level for diagnostics on stderr")
}

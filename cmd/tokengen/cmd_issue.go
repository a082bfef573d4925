package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"coachline.com/backoffice/auth"
	"coachline.com/backoffice/config"
	"coachline.com/backoffice/logging"
)

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Sign a token with JWT_SIGNING_KEY",
	RunE:  runIssue,
}

func init() {
	issueCmd.Flags().String("sub", "", "Subject (user id)")
	issueCmd.Flags().String("primary-role", "", "Primary role id")
	issueCmd.Flags().StringSlice("role", nil, "Role id (repeatable)")
	issueCmd.Flags().StringSlice("permission", nil, "Permission name (repeatable)")
	issueCmd.Flags().String("identity", "", "SpacetimeDB identity")
	issueCmd.Flags().String("xuid", "", "Xbox user id")
	issueCmd.Flags().Duration("ttl", 0, "Token lifetime (defaults to TOKEN_TTL)")
	_ = issueCmd.MarkFlagRequired("sub")
}

func runIssue(cmd *cobra.Command, _ []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	log := logging.NewWithWriter(os.Stderr, level, "tokengen", "cli")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cm, err := config.NewManager(cfg.ConfigSource, cfg.ConfigSourceConfig, log)
	if err != nil {
		return err
	}
	jwtCfg, err := auth.LoadJWTConfig(cm)
	if err != nil {
		return err
	}

	svc, err := auth.NewTokenService(jwtCfg.SigningKey, jwtCfg.Issuer)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	claims := auth.TokenClaims{}
	claims.Subject, _ = flags.GetString("sub")
	claims.PrimaryRole, _ = flags.GetString("primary-role")
	claims.Roles, _ = flags.GetStringSlice("role")
	claims.Permissions, _ = flags.GetStringSlice("permission")
	claims.Identity, _ = flags.GetString("identity")
	claims.Xuid, _ = flags.GetString("xuid")

	ttl, _ := flags.GetDuration("ttl")
	if ttl <= 0 {
		ttl = jwtCfg.TokenTTL
	}

	token, err := svc.GenerateToken(claims, ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

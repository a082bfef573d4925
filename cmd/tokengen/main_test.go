package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachline.com/backoffice/auth"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestIssueThenInspect(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env-file")
	t.Setenv("JWT_SIGNING_KEY", "tokengen-test-secret")
	t.Setenv("JWT_ISSUER", "tokengen-test")

	token := strings.TrimSpace(execute(t, "issue",
		"--sub", "admin-1",
		"--primary-role", "1",
		"--permission", "jobs.create",
		"--permission", "roles.update",
	))
	require.NotEmpty(t, token)

	var claims auth.Claims
	require.NoError(t, json.Unmarshal([]byte(execute(t, "inspect", token)), &claims))

	sub, ok := claims.First(auth.ClaimSubject)
	require.True(t, ok)
	assert.Equal(t, "admin-1", sub)
	assert.True(t, claims.Has(auth.ClaimPrimaryRole, auth.AdminRoleID))
	assert.True(t, claims.Has(auth.ClaimPermission, "roles.update"))
}

func TestPermissionsListsCatalogue(t *testing.T) {
	out := execute(t, "permissions")
	for name := range auth.PermissionCatalogue() {
		assert.Contains(t, out, name)
	}
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing"

func TestNewTokenServiceRequiresSecret(t *testing.T) {
	_, err := NewTokenService("", "issuer")
	assert.Error(t, err)
}

func TestGenerateTokenRoundTripsThroughEvaluator(t *testing.T) {
	svc, err := NewTokenService(testSecret, "test-issuer")
	require.NoError(t, err)

	token, err := svc.GenerateToken(TokenClaims{
		Subject:     "admin-1",
		PrimaryRole: "1",
		Roles:       []string{"1", "4"},
		Permissions: []string{PermJobsCreate, PermRolesUpdate},
		Identity:    "c200f00d",
		Xuid:        "2535405290",
	}, time.Hour)
	require.NoError(t, err)

	e := NewEvaluator(zerolog.Nop())
	r := requestWithHeader(BearerPrefix + token)

	assert.True(t, e.IsAdmin(r))
	assert.True(t, e.HasPermission(r, PermRolesUpdate))
	assert.False(t, e.HasPermission(r, PermRolesDelete))

	sub, ok := e.UserID(r)
	require.True(t, ok)
	assert.Equal(t, "admin-1", sub)

	identity, _ := e.SpacetimeIdentity(r)
	assert.Equal(t, "c200f00d", identity)
	xuid, _ := e.Xuid(r)
	assert.Equal(t, "2535405290", xuid)
}

func TestGenerateTokenOmitsEmptyClaims(t *testing.T) {
	svc, err := NewTokenService(testSecret, "test-issuer")
	require.NoError(t, err)

	token, err := svc.GenerateToken(TokenClaims{Subject: "user-7"}, time.Minute)
	require.NoError(t, err)

	claims, err := DecodeClaims(token)
	require.NoError(t, err)

	_, ok := claims.First(ClaimIdentity)
	assert.False(t, ok)
	_, ok = claims.First(ClaimPrimaryRole)
	assert.False(t, ok)
	iss, _ := claims.First("iss")
	assert.Equal(t, "test-issuer", iss)
}

func TestGenerateTokenIsVerifiableWithSecret(t *testing.T) {
	svc, err := NewTokenService(testSecret, "test-issuer")
	require.NoError(t, err)

	token, err := svc.GenerateToken(TokenClaims{Subject: "user-7"}, time.Minute)
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "user-7", sub)
}

func TestExpiredTokenStillDecodes(t *testing.T) {
	svc, err := NewTokenService(testSecret, "test-issuer")
	require.NoError(t, err)

	token, err := svc.GenerateToken(TokenClaims{Subject: "user-7", PrimaryRole: "1"}, -time.Hour)
	require.NoError(t, err)

	e := NewEvaluator(zerolog.Nop())
	assert.True(t, e.IsAdmin(requestWithHeader(BearerPrefix+token)))
}

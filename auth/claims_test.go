package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeClaimsKeepsDocumentOrder(t *testing.T) {
	token := rawToken(hsHeader, `{"sub":"user-42","role":["3","1"],"sub":"user-99","permission":"jobs.create"}`)

	claims, err := DecodeClaims(token)
	require.NoError(t, err)

	assert.Equal(t, Claims{
		{Type: "sub", Value: "user-42"},
		{Type: "role", Value: "3"},
		{Type: "role", Value: "1"},
		{Type: "sub", Value: "user-99"},
		{Type: "permission", Value: "jobs.create"},
	}, claims)
}

func TestDecodeClaimsValueKinds(t *testing.T) {
	token := rawToken(hsHeader, `{"primary_role":1,"active":true,"identity":null,"meta":{"a":1},"nested":[[1,2]],"name":"café"}`)

	claims, err := DecodeClaims(token)
	require.NoError(t, err)

	v, ok := claims.First("primary_role")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	v, _ = claims.First("active")
	assert.Equal(t, "true", v)

	_, ok = claims.First("identity")
	assert.False(t, ok, "null carries no claim")

	v, _ = claims.First("meta")
	assert.Equal(t, `{"a":1}`, v)

	v, _ = claims.First("nested")
	assert.Equal(t, "[1,2]", v)

	v, _ = claims.First("name")
	assert.Equal(t, "café", v)
}

func TestDecodeClaimsEmptyArray(t *testing.T) {
	claims, err := DecodeClaims(rawToken(hsHeader, `{"role":[],"sub":"u"}`))
	require.NoError(t, err)

	assert.False(t, claims.Has(ClaimRole, AdminRoleID))
	assert.Len(t, claims, 1)
}

func TestDecodeClaimsRejectsUndecodable(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two segments", "abc.def"},
		{"bad base64", "!!!.@@@.###"},
		{"payload not json", rawToken(hsHeader, `hello`)},
		{"payload is array", rawToken(hsHeader, `["sub"]`)},
		{"unknown alg", rawToken(`{"alg":"XX999","typ":"JWT"}`, `{"sub":"u"}`)},
		{"missing alg", rawToken(`{"typ":"JWT"}`, `{"sub":"u"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := DecodeClaims(tt.token)
			assert.ErrorIs(t, err, ErrDecodeFailure)
			assert.Nil(t, claims)
		})
	}
}

func TestClaimsLookups(t *testing.T) {
	claims := Claims{
		{Type: ClaimPermission, Value: "jobs.create"},
		{Type: ClaimPermission, Value: "jobs.view"},
	}

	assert.True(t, claims.Has(ClaimPermission, "jobs.view"))
	assert.False(t, claims.Has(ClaimPermission, "Jobs.View"))

	_, ok := claims.First(ClaimSubject)
	assert.False(t, ok)
}

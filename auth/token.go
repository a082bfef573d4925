// auth/token.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims describes what an issued token asserts about its holder.
type TokenClaims struct {
	Subject     string
	PrimaryRole string
	Roles       []string
	Permissions []string
	Identity    string
	Xuid        string
}

// issuedClaims is the wire shape; multi-valued claims are JSON arrays.
type issuedClaims struct {
	PrimaryRole string   `json:"primary_role,omitempty"`
	Roles       []string `json:"role,omitempty"`
	Permissions []string `json:"permission,omitempty"`
	Identity    string   `json:"identity,omitempty"`
	Xuid        string   `json:"xuid,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues HS256 tokens in the shape the evaluator reads. It
// stands in for the production issuer in development and tests.
type TokenService struct {
	secretKey []byte
	issuer    string
}

// NewTokenService creates a new instance of the TokenService.
func NewTokenService(secretKey, issuer string) (*TokenService, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("JWT signing key cannot be empty")
	}
	return &TokenService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}, nil
}

// GenerateToken creates a new JWT with the given claims and TTL.
func (s *TokenService) GenerateToken(claims TokenClaims, ttl time.Duration) (string, error) {
	now := time.Now()
	issued := issuedClaims{
		PrimaryRole: claims.PrimaryRole,
		Roles:       claims.Roles,
		Permissions: claims.Permissions,
		Identity:    claims.Identity,
		Xuid:        claims.Xuid,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   claims.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, issued)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

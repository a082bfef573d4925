// Package auth answers authorization questions about an incoming request
// from the claims carried in its bearer credential.
//
// The credential is decoded, never verified: signature and expiry checks
// belong to the service that issues tokens and to whatever sits in front of
// this API. Every query degrades to "no privilege" / "no identity" when the
// header is missing, malformed, or undecodable.
package auth

import (
	"fmt"
	"strings"
)

// Version of the auth package
const Version = "3.0.0"

// BearerPrefix is the exact, case-sensitive prefix required on the
// Authorization header.
const BearerPrefix = "Bearer "

// HeaderAuthorization is the header the credential is read from.
const HeaderAuthorization = "Authorization"

// AuthError represents authentication/authorization errors
type AuthError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Common auth errors
var (
	ErrMissingToken    = &AuthError{"MISSING_TOKEN", "Authorization header required", 401}
	ErrMalformedHeader = &AuthError{"MALFORMED_HEADER", "Authorization header must use the Bearer scheme", 401}
	ErrDecodeFailure   = &AuthError{"DECODE_FAILURE", "Bearer token could not be decoded", 401}
	ErrUnauthenticated = &AuthError{"UNAUTHENTICATED", "Authentication required", 401}
	ErrForbidden       = &AuthError{"FORBIDDEN", "Forbidden", 403}
)

// ExtractTokenFromHeader returns the credential that follows "Bearer ".
// The scheme must match exactly; whitespace around the credential itself is
// trimmed, so "Bearer   <token>" yields <token>.
func ExtractTokenFromHeader(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", ErrMalformedHeader
	}
	return strings.TrimSpace(header[len(BearerPrefix):]), nil
}

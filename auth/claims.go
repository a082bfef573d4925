package auth

import (
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/golang-jwt/jwt/v5"
)

// Recognised claim types.
const (
	ClaimPrimaryRole = "primary_role"
	ClaimRole        = "role"
	ClaimPermission  = "permission"
	ClaimSubject     = "sub"
	ClaimIdentity    = "identity"
	ClaimXuid        = "xuid"
)

// AdminRoleID is the legacy role id of the administrator role.
const AdminRoleID = "1"

// Claim is a single typed fact from a credential payload.
type Claim struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Claims keeps payload order. Array values become one claim per element and
// repeated keys are kept, so singular lookups are first-match-wins.
type Claims []Claim

// First returns the value of the first claim of claimType.
func (cs Claims) First(claimType string) (string, bool) {
	for _, c := range cs {
		if c.Type == claimType {
			return c.Value, true
		}
	}
	return "", false
}

// Has reports whether any claim of claimType carries exactly value.
func (cs Claims) Has(claimType, value string) bool {
	for _, c := range cs {
		if c.Type == claimType && c.Value == value {
			return true
		}
	}
	return false
}

// DecodeClaims reads the payload of a compact JWS without verifying its
// signature or expiry. Every error it returns wraps ErrDecodeFailure.
func DecodeClaims(tokenString string) (Claims, error) {
	parser := jwt.NewParser()
	_, parts, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, decodeFailure("failed to parse token unverified", err)
	}

	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, decodeFailure("failed to decode payload segment", err)
	}

	var claims Claims
	err = jsonparser.ObjectEach(payload, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
		claimType := string(key)
		if dataType != jsonparser.Array {
			v, ok, err := claimValue(value, dataType)
			if err != nil {
				return fmt.Errorf("claim %q: %w", claimType, err)
			}
			if ok {
				claims = append(claims, Claim{Type: claimType, Value: v})
			}
			return nil
		}

		var elemErr error
		_, err := jsonparser.ArrayEach(value, func(elem []byte, elemType jsonparser.ValueType, _ int, err error) {
			if elemErr != nil {
				return
			}
			if err != nil {
				elemErr = err
				return
			}
			v, ok, err := claimValue(elem, elemType)
			if err != nil {
				elemErr = err
				return
			}
			if ok {
				claims = append(claims, Claim{Type: claimType, Value: v})
			}
		})
		if err != nil {
			return fmt.Errorf("claim %q: %w", claimType, err)
		}
		if elemErr != nil {
			return fmt.Errorf("claim %q: %w", claimType, elemErr)
		}
		return nil
	})
	if err != nil {
		return nil, decodeFailure("failed to read payload claims", err)
	}

	return claims, nil
}

func decodeFailure(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDecodeFailure, step, err)
}

// claimValue renders a JSON value as a claim value. Null carries no claim.
func claimValue(value []byte, dataType jsonparser.ValueType) (string, bool, error) {
	switch dataType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return "", false, err
		}
		return s, true, nil
	case jsonparser.Number, jsonparser.Boolean, jsonparser.Object, jsonparser.Array:
		return string(value), true, nil
	case jsonparser.Null:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("unsupported value type %s", dataType)
	}
}

package auth

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Request is anything that exposes request headers. *fiber.Ctx satisfies it
// directly; wrap a *http.Request with HTTPRequest.
type Request interface {
	Get(key string, defaultValue ...string) string
}

// HTTPRequest adapts a net/http request to Request.
type HTTPRequest struct {
	*http.Request
}

func (r HTTPRequest) Get(key string, defaultValue ...string) string {
	if v := r.Header.Get(key); v != "" {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// Authorizer is the single authorization capability handed to handlers.
// Every method is total: failures read as false or absent.
type Authorizer interface {
	IsAdmin(r Request) bool
	HasPermission(r Request, permission string) bool
	UserID(r Request) (string, bool)
	SpacetimeIdentity(r Request) (string, bool)
	Xuid(r Request) (string, bool)
}

// Evaluator implements Authorizer over unverified bearer claims.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	log zerolog.Logger
}

var _ Authorizer = (*Evaluator)(nil)

// NewEvaluator creates an evaluator that reports failures to log.
func NewEvaluator(log zerolog.Logger) *Evaluator {
	return &Evaluator{log: log.With().Str("component", "authorization").Logger()}
}

// IsAdmin checks primary_role first, then falls back to any role claim.
func (e *Evaluator) IsAdmin(r Request) bool {
	claims, ok := e.claims(r)
	if !ok {
		return false
	}
	if claims.Has(ClaimPrimaryRole, AdminRoleID) {
		return true
	}
	return claims.Has(ClaimRole, AdminRoleID)
}

// HasPermission reports whether a permission claim equals permission exactly.
func (e *Evaluator) HasPermission(r Request, permission string) bool {
	claims, ok := e.claims(r)
	if !ok {
		return false
	}
	return claims.Has(ClaimPermission, permission)
}

// UserID returns the first sub claim.
func (e *Evaluator) UserID(r Request) (string, bool) {
	return e.first(r, ClaimSubject)
}

// SpacetimeIdentity returns the first identity claim.
func (e *Evaluator) SpacetimeIdentity(r Request) (string, bool) {
	return e.first(r, ClaimIdentity)
}

// Xuid returns the first xuid claim.
func (e *Evaluator) Xuid(r Request) (string, bool) {
	return e.first(r, ClaimXuid)
}

func (e *Evaluator) first(r Request, claimType string) (string, bool) {
	claims, ok := e.claims(r)
	if !ok {
		return "", false
	}
	return claims.First(claimType)
}

// claims is the only place header and decode failures are absorbed.
func (e *Evaluator) claims(r Request) (Claims, bool) {
	tokenString, err := ExtractTokenFromHeader(r.Get(HeaderAuthorization))
	if err != nil {
		e.log.Warn().Err(err).Msg("authorization header missing or malformed")
		return nil, false
	}

	claims, err := DecodeClaims(tokenString)
	if err != nil {
		e.log.Error().Err(err).Msg("failed to decode bearer token")
		return nil, false
	}
	return claims, true
}

package auth

import (
	"fmt"
	"time"

	"coachline.com/backoffice/config"
)

// JWTConfig holds settings for issuing development tokens.
type JWTConfig struct {
	SigningKey string
	Issuer     string
	TokenTTL   time.Duration
}

// LoadJWTConfig reads token issuing settings from the config manager.
func LoadJWTConfig(cm *config.Manager) (*JWTConfig, error) {
	ttl, err := parseDuration(cm.GetWithDefault("TOKEN_TTL", "1h"), time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	signingKey := cm.Get("JWT_SIGNING_KEY")
	if signingKey == "" {
		return nil, fmt.Errorf("JWT_SIGNING_KEY configuration is required")
	}

	return &JWTConfig{
		SigningKey: signingKey,
		Issuer:     cm.GetWithDefault("JWT_ISSUER", "coachline-backoffice"),
		TokenTTL:   ttl,
	}, nil
}

// parseDuration parses duration string with fallback
func parseDuration(durationStr string, fallback time.Duration) (time.Duration, error) {
	if durationStr == "" {
		return fallback, nil
	}
	return time.ParseDuration(durationStr)
}

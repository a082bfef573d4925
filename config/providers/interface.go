// Package providers holds the secret sources a config.Manager reads from.
package providers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// ProviderType names a secret source as written in CONFIG_SOURCE.
type ProviderType string

const (
	ProviderTypeAzureKeyVault ProviderType = "azure-keyvault"
	ProviderTypeEnvFile       ProviderType = "env-file"
)

// ConfigProvider looks up secrets by key. A missing key is an error.
type ConfigProvider interface {
	Get(ctx context.Context, key string) (string, error)
}

// ProviderConfig selects a provider and carries its options, for example
// {"vault_url": "https://coachline.vault.azure.net/"} or {"path": ".env"}.
type ProviderConfig struct {
	ProviderType ProviderType           `json:"provider_type"`
	Config       map[string]interface{} `json:"config"`
}

// ParseProviderConfig builds a ProviderConfig from CONFIG_SOURCE and the raw
// JSON of CONFIG_SOURCE_CONFIG. An empty source means env-file.
func ParseProviderConfig(source, raw string) (ProviderConfig, error) {
	if source == "" {
		source = string(ProviderTypeEnvFile)
	}
	pc := ProviderConfig{
		ProviderType: ProviderType(source),
		Config:       map[string]interface{}{},
	}
	if raw == "" {
		return pc, nil
	}
	if err := json.Unmarshal([]byte(raw), &pc.Config); err != nil {
		return ProviderConfig{}, fmt.Errorf("failed to parse CONFIG_SOURCE_CONFIG: %w", err)
	}
	return pc, nil
}

// ProviderFactory builds providers that log through Log.
type ProviderFactory struct {
	Log zerolog.Logger
}

// NewProvider creates the provider named by config.ProviderType.
func (pf *ProviderFactory) NewProvider(config ProviderConfig) (ConfigProvider, error) {
	switch config.ProviderType {
	case ProviderTypeAzureKeyVault:
		return NewAzureKeyVaultProvider(config, pf.Log)
	case ProviderTypeEnvFile:
		return NewEnvFileProvider(config)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.ProviderType)
	}
}

// ValidateProviderConfig checks provider options without touching the source.
func (pf *ProviderFactory) ValidateProviderConfig(config ProviderConfig) error {
	switch config.ProviderType {
	case ProviderTypeAzureKeyVault:
		if vaultURL, _ := config.Config["vault_url"].(string); vaultURL == "" {
			return fmt.Errorf("vault_url is required in config for Azure Key Vault provider")
		}
		return nil
	case ProviderTypeEnvFile:
		if raw, ok := config.Config["path"]; ok {
			if _, isString := raw.(string); !isString {
				return fmt.Errorf("path must be a string, got %T", raw)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported provider type: %s", config.ProviderType)
	}
}

package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"coachline.com/backoffice/config/providers"
)

// Manager reads secrets and settings from the configured source, falling
// back to the process environment.
type Manager struct {
	configSource     providers.ProviderType
	provider         providers.ConfigProvider
	fallbackProvider providers.ConfigProvider
	log              zerolog.Logger
}

// NewManager creates a configuration manager. sourceConfig is the raw JSON
// from CONFIG_SOURCE_CONFIG and may be empty.
func NewManager(source, sourceConfig string, log zerolog.Logger) (*Manager, error) {
	log = log.With().Str("component", "config").Logger()

	providerConfig, err := providers.ParseProviderConfig(source, sourceConfig)
	if err != nil {
		return nil, err
	}

	factory := &providers.ProviderFactory{Log: log}
	if err := factory.ValidateProviderConfig(providerConfig); err != nil {
		return nil, fmt.Errorf("invalid provider configuration: %w", err)
	}

	provider, err := factory.NewProvider(providerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create primary provider: %w", err)
	}

	// The fallback is always the process environment.
	fallbackProvider, err := factory.NewProvider(providers.ProviderConfig{
		ProviderType: providers.ProviderTypeEnvFile,
		Config:       map[string]interface{}{},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fallback provider: %w", err)
	}

	log.Info().Str("config_source", string(providerConfig.ProviderType)).Msg("configuration manager initialized")

	return newManager(providerConfig.ProviderType, provider, fallbackProvider, log), nil
}

func newManager(source providers.ProviderType, provider, fallback providers.ConfigProvider, log zerolog.Logger) *Manager {
	return &Manager{
		configSource:     source,
		provider:         provider,
		fallbackProvider: fallback,
		log:              log,
	}
}

// Get retrieves a configuration value, or "" when no source has it.
func (cm *Manager) Get(key string) string {
	return cm.GetWithDefault(key, "")
}

// GetWithDefault retrieves a configuration value with fallback
func (cm *Manager) GetWithDefault(key, defaultValue string) string {
	ctx := context.Background()

	searchKey := cm.normalizeKey(key)
	value, err := cm.provider.Get(ctx, searchKey)
	if err == nil && value != "" {
		return value
	}

	// With env-file as primary the fallback would read the same source.
	if cm.configSource == providers.ProviderTypeEnvFile {
		return defaultValue
	}

	cm.log.Debug().Err(err).Str("key", key).Str("search_key", searchKey).Msg("primary provider miss, trying environment")
	value, err = cm.fallbackProvider.Get(ctx, key)
	if err != nil || value == "" {
		return defaultValue
	}
	return value
}

// IsKeyVaultEnabled returns true if Azure Key Vault is the primary provider
func (cm *Manager) IsKeyVaultEnabled() bool {
	return cm.configSource == providers.ProviderTypeAzureKeyVault
}

// Source returns the current configuration source
func (cm *Manager) Source() string {
	return string(cm.configSource)
}

// normalizeKey adapts env-style keys to the naming rules of the source.
func (cm *Manager) normalizeKey(key string) string {
	switch cm.configSource {
	case providers.ProviderTypeAzureKeyVault:
		// Key Vault secret names cannot contain underscores.
		return strings.ReplaceAll(key, "_", "-")
	default:
		return key
	}
}

package providers

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
	"github.com/rs/zerolog"
)

// secretGetter is the subset of *azsecrets.Client the provider uses.
type secretGetter interface {
	GetSecret(ctx context.Context, name string, version string, options *azsecrets.GetSecretOptions) (azsecrets.GetSecretResponse, error)
}

type cachedSecret struct {
	value     string
	expiresAt time.Time
}

// AzureKeyVaultProvider implements ConfigProvider for Azure Key Vault
type AzureKeyVaultProvider struct {
	client        secretGetter
	vaultURL      string
	cache         map[string]cachedSecret
	cacheMutex    sync.RWMutex
	cacheDuration time.Duration
	log           zerolog.Logger
}

// NewAzureKeyVaultProvider creates a new Azure Key Vault provider
func NewAzureKeyVaultProvider(config ProviderConfig, log zerolog.Logger) (ConfigProvider, error) {
	vaultURL, ok := config.Config["vault_url"].(string)
	if !ok || vaultURL == "" {
		return nil, fmt.Errorf("vault_url is required in config for Azure Key Vault provider")
	}

	// Managed identity in Azure, developer credentials locally.
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	client, err := azsecrets.NewClient(vaultURL, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Key Vault client: %w", err)
	}

	log.Info().Str("vault_url", vaultURL).Msg("Azure Key Vault provider initialized")
	return newAzureKeyVaultProvider(client, vaultURL, 5*time.Minute, log), nil
}

func newAzureKeyVaultProvider(client secretGetter, vaultURL string, cacheDuration time.Duration, log zerolog.Logger) *AzureKeyVaultProvider {
	return &AzureKeyVaultProvider{
		client:        client,
		vaultURL:      vaultURL,
		cache:         make(map[string]cachedSecret),
		cacheDuration: cacheDuration,
		log:           log,
	}
}

// Get retrieves a configuration value from Azure Key Vault
func (akp *AzureKeyVaultProvider) Get(ctx context.Context, key string) (string, error) {
	secretName := strings.ReplaceAll(key, "_", "-")

	akp.cacheMutex.RLock()
	if entry, exists := akp.cache[secretName]; exists && time.Now().Before(entry.expiresAt) {
		akp.cacheMutex.RUnlock()
		return entry.value, nil
	}
	akp.cacheMutex.RUnlock()

	akp.cacheMutex.Lock()
	defer akp.cacheMutex.Unlock()

	// Another caller may have filled the entry while we waited.
	if entry, exists := akp.cache[secretName]; exists && time.Now().Before(entry.expiresAt) {
		return entry.value, nil
	}

	secret, err := akp.getSecretFromKeyVault(ctx, secretName)
	if err != nil {
		akp.log.Error().Err(err).Str("secret", secretName).Msg("failed to retrieve secret from Key Vault")
		return "", err
	}

	akp.cache[secretName] = cachedSecret{value: secret, expiresAt: time.Now().Add(akp.cacheDuration)}
	return secret, nil
}

func (akp *AzureKeyVaultProvider) getSecretFromKeyVault(ctx context.Context, secretName string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// An empty version reads the latest secret version.
	resp, err := akp.client.GetSecret(ctx, secretName, "", nil)
	if err != nil {
		return "", fmt.Errorf("failed to get secret '%s': %w", secretName, err)
	}
	if resp.Value == nil {
		return "", fmt.Errorf("secret '%s' has no value", secretName)
	}

	akp.log.Debug().Str("secret", secretName).Msg("retrieved secret from Key Vault")
	return *resp.Value, nil
}

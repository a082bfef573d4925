package providers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// EnvFileProvider reads the process environment, then an optional .env file.
// Process variables win over file values.
type EnvFileProvider struct {
	fileValues map[string]string
}

// NewEnvFileProvider creates a new environment file provider. A missing
// file is not an error.
func NewEnvFileProvider(config ProviderConfig) (ConfigProvider, error) {
	provider := &EnvFileProvider{fileValues: map[string]string{}}

	path, _ := config.Config["path"].(string)
	if path == "" {
		return provider, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return provider, nil
		}
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	provider.fileValues = values
	return provider, nil
}

// Get retrieves a configuration value from environment variables
func (ep *EnvFileProvider) Get(ctx context.Context, key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	if value := ep.fileValues[key]; value != "" {
		return value, nil
	}
	return "", fmt.Errorf("environment variable '%s' not set", key)
}

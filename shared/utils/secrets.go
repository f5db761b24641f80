package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSecretsDir - путь по умолчанию для Docker Secrets.
const DefaultSecretsDir = "/run/secrets"

// ErrSecretNotFound is returned when neither the secret file nor the fallback
// environment variable provide a value.
var ErrSecretNotFound = errors.New("secret not found")

// ReadSecret читает секрет из файла в каталоге dir (пустой dir означает DefaultSecretsDir).
func ReadSecret(dir, secretName string) (string, error) {
	if dir == "" {
		dir = DefaultSecretsDir
	}
	filePath := filepath.Join(dir, secretName)
	secretBytes, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSecretNotFound, filePath)
		}
		return "", fmt.Errorf("failed to read secret file %s: %w", filePath, err)
	}
	secret := strings.TrimSpace(string(secretBytes))
	if secret == "" {
		return "", fmt.Errorf("secret file %s is empty", filePath)
	}
	return secret, nil
}

// ReadSecretOrEnv tries the secret file first and falls back to the environment
// variable envKey. Returns ErrSecretNotFound if both are absent.
func ReadSecretOrEnv(dir, secretName, envKey string) (string, error) {
	secret, err := ReadSecret(dir, secretName)
	if err == nil {
		return secret, nil
	}
	if !errors.Is(err, ErrSecretNotFound) {
		return "", err
	}
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%w: set %s or provide secret file %q", ErrSecretNotFound, envKey, secretName)
}

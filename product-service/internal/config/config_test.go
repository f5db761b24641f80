package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"storefront/product-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EnvOnly(t *testing.T) {
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("SEED_DEFAULTS", "false")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "ProductService", cfg.ServiceName)
	assert.False(t, cfg.SeedDefaults)
	assert.False(t, cfg.Auth.Required)
	assert.Empty(t, cfg.Auth.Secret)
	assert.Equal(t, uint(5), cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoadConfig_YAML(t *testing.T) {
	t.Setenv("SECRETS_DIR", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yml")
	yaml := `
server_port: "7070"
cors_allowed_origins: "http://a.test, http://b.test"
log:
  level: warn
rate_limit:
  requests: 3
  window: 10s
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.ServerPort)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, uint(3), cfg.RateLimit.Requests)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.GetAllowedOrigins())
}

func TestLoadConfig_AuthRequiresSecret(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("JWT_KEY", "")

	_, err := config.LoadConfig("")
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("TestSecretKeyThatIsLongEnoughForHS256Algorithm12345"), 0o600))
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.True(t, cfg.Auth.Required)
	assert.Equal(t, "TestSecretKeyThatIsLongEnoughForHS256Algorithm12345", cfg.Auth.Secret)
}

func TestLoadConfig_RedisPassword(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("REDIS_PASSWORD", "from-env")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Redis.Password)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "redis_password"), []byte("from-file\n"), 0o600))
	cfg, err = config.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Redis.Password)
}

func TestLoadConfig_NoRedisPassword(t *testing.T) {
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("REDIS_PASSWORD", "")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Redis.Password)
}

package utils_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"storefront/shared/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSecret(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("  s3cr3t\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty"), []byte("\n"), 0o600))

	secret, err := utils.ReadSecret(dir, "jwt_secret")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", secret)

	_, err = utils.ReadSecret(dir, "empty")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, utils.ErrSecretNotFound))

	_, err = utils.ReadSecret(dir, "missing")
	assert.True(t, errors.Is(err, utils.ErrSecretNotFound))
}

func TestReadSecretOrEnv(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("TEST_SECRET_ENV", "")
	_, err := utils.ReadSecretOrEnv(dir, "jwt_secret", "TEST_SECRET_ENV")
	assert.True(t, errors.Is(err, utils.ErrSecretNotFound))

	t.Setenv("TEST_SECRET_ENV", "from-env")
	secret, err := utils.ReadSecretOrEnv(dir, "jwt_secret", "TEST_SECRET_ENV")
	require.NoError(t, err)
	assert.Equal(t, "from-env", secret)

	// Файл имеет приоритет над переменной окружения
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-file"), 0o600))
	secret, err = utils.ReadSecretOrEnv(dir, "jwt_secret", "TEST_SECRET_ENV")
	require.NoError(t, err)
	assert.Equal(t, "from-file", secret)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, utils.SplitAndTrim("  "))
	assert.Equal(t, []string{"http://a", "http://b"}, utils.SplitAndTrim(" http://a, ,http://b "))
}

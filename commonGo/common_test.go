package commonGo

import (
	"os"
	"path/filepath"
	"testing"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEnvFile(t *testing.T) {
	t.Run("should read the values from the file", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("TEST_GATEWAY_KEY_A=from-file\n"), 0600))
		t.Setenv("TEST_GATEWAY_KEY_A", "")
		_ = os.Unsetenv("TEST_GATEWAY_KEY_A")

		m := map[string]string{"TEST_GATEWAY_KEY_A": ""}
		err := ReadEnvFile(envFile, m)
		require.NoError(t, err)
		assert.Equal(t, "from-file", m["TEST_GATEWAY_KEY_A"])
	})
	t.Run("missing file falls back to the environment", func(t *testing.T) {
		t.Setenv("TEST_GATEWAY_KEY_B", "from-env")

		m := map[string]string{"TEST_GATEWAY_KEY_B": ""}
		err := ReadEnvFile(filepath.Join(t.TempDir(), "missing.env"), m)
		require.NoError(t, err)
		assert.Equal(t, "from-env", m["TEST_GATEWAY_KEY_B"])
	})
	t.Run("key set to an empty value is accepted", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("TEST_GATEWAY_KEY_C=\n"), 0600))
		t.Setenv("TEST_GATEWAY_KEY_C", "")
		_ = os.Unsetenv("TEST_GATEWAY_KEY_C")

		m := map[string]string{"TEST_GATEWAY_KEY_C": "stale"}
		err := ReadEnvFile(envFile, m)
		require.NoError(t, err)
		assert.Equal(t, "", m["TEST_GATEWAY_KEY_C"])
	})
	t.Run("empty key set should not read anything", func(t *testing.T) {
		err := ReadEnvFile(filepath.Join(t.TempDir(), "missing.env"), map[string]string{})
		require.NoError(t, err)
	})
	t.Run("unset key should error", func(t *testing.T) {
		m := map[string]string{"TEST_GATEWAY_KEY_UNSET": ""}
		err := ReadEnvFile(filepath.Join(t.TempDir(), "missing.env"), m)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_GATEWAY_KEY_UNSET is not set")
	})
}

func TestAttachFileLogger(t *testing.T) {
	log := logger.GetOrCreate("commonGo-test")

	handler, err := AttachFileLogger(log, "logs", "gateway", false, t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, handler)
}

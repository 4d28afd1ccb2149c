package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_OnMissingFile_ShouldUseDefaults(t *testing.T) {
	conf, err := NewFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "$", conf.App().CurrencySymbol())
	assert.Equal(t, "2006-01-02", conf.App().DateLayout())
	assert.False(t, conf.App().ViewSortedByDate())
	assert.Equal(t, MemoryDriver, conf.Storage().Accounts())
	assert.Equal(t, "disable", conf.Postgres().SSLMode())
}

func Test_OnConfigFile_ShouldOverrideDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  currency-symbol: "€"
  sort-by-date: true
storage:
  accounts: postgres
postgres:
  host: localhost
  db: expenses
  username: manager
  password: secret
`)

	conf, err := NewFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "€", conf.App().CurrencySymbol())
	assert.Equal(t, "2006-01-02", conf.App().DateLayout())
	assert.True(t, conf.App().ViewSortedByDate())
	assert.Equal(t, PostgresDriver, conf.Storage().Accounts())
	assert.Equal(t, "localhost", conf.Postgres().Host())
	assert.Equal(t, "expenses", conf.Postgres().Database())
	assert.Equal(t, "manager", conf.Postgres().Username())
	assert.Equal(t, "secret", conf.Postgres().Password())
}

func Test_OnUnknownStorage_ShouldFail(t *testing.T) {
	path := writeConfig(t, "storage:\n  accounts: redis\n")

	_, err := NewFromFile(path)
	assert.Error(t, err)
}

func Test_OnBrokenYAML_ShouldFail(t *testing.T) {
	path := writeConfig(t, "app: [")

	_, err := NewFromFile(path)
	assert.Error(t, err)
}

func Test_OnConfigFileEnv_ShouldReadThatFile(t *testing.T) {
	path := writeConfig(t, "app:\n  currency-symbol: \"£\"\n")
	t.Setenv(configFileEnvKey, path)

	conf, err := New()
	require.NoError(t, err)
	assert.Equal(t, "£", conf.App().CurrencySymbol())
}

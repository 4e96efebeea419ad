package config_test

import (
	"clubhouse/internal/config"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config dir to a temporary directory.
func isolate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
}

func TestDefaults(t *testing.T) {
	isolate(t)

	c, err := config.NewFromUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *c)
	assert.Equal(t, filepath.Join("resources", "migrations"), c.MigrationsDir())
}

func TestEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("CLUBHOUSE_HTTP_ADDRESS", "0.0.0.0:8080")
	t.Setenv("CLUBHOUSE_DEV_MODE", "true")
	t.Setenv("CLUBHOUSE_POST_RATE", "0.5")

	c, err := config.NewFromUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", c.HTTPAddress)
	assert.True(t, c.DevMode)
	assert.Equal(t, 0.5, c.PostRate)
	assert.Equal(t, "./clubhouse.db", c.DatabasePath)
}

func TestWriteThenReload(t *testing.T) {
	isolate(t)

	c := config.Default()
	c.DatabasePath = "/srv/clubhouse.db"
	c.DefaultLocale = "fr"
	path, err := c.Write()
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	var reloaded config.Config
	require.NoError(t, reloaded.ReloadFromUserConfigDir())
	assert.Equal(t, c, reloaded)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestLoadDefaults(t *testing.T) {
	t.Run("all keys", func(t *testing.T) {
		path := writeConfig(t, "chip = 256\ntype = \"s64k\"\naddr = 3\njobs = 2\nverify = true\n")

		defaults, err := LoadDefaults(path)
		assert.NoError(t, err)
		assert.NotNil(t, defaults.Chip)
		assert.Equal(t, 256, *defaults.Chip)
		assert.Equal(t, "s64k", *defaults.Type)
		assert.Equal(t, 3, *defaults.Address)
		assert.Equal(t, 2, *defaults.Jobs)
		assert.True(t, *defaults.Verify)
	})

	t.Run("partial keys", func(t *testing.T) {
		path := writeConfig(t, "type = \"rc755\"\n")

		defaults, err := LoadDefaults(path)
		assert.NoError(t, err)
		assert.Nil(t, defaults.Chip)
		assert.Nil(t, defaults.Address)
		assert.Nil(t, defaults.Verify)
		assert.Equal(t, "rc755", *defaults.Type)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeConfig(t, "chip = 128\nspeed = 3\n")

		_, err := LoadDefaults(path)
		assert.ErrorContains(t, err, "unsupported keys")
		assert.ErrorContains(t, err, "speed")
	})

	t.Run("wrong value type", func(t *testing.T) {
		path := writeConfig(t, "chip = \"large\"\n")

		_, err := LoadDefaults(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDefaults(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Error(t, err)
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rom2msx.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	return path
}

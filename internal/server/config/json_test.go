package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"network": map[string]any{
			"interface": "0.0.0.0",
			"port":      9000,
		},
		"db": map[string]any{
			"use_internal": false,
			"url":          "postgres://u:p@host:5432/accounts",
			"path":         "accounts.db",
		},
		"storage_timeout": "10s",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "0.0.0.0", cfg.BindInterface)
		assert.Equal(t, 9000, cfg.BindPort)
		assert.Equal(t, false, cfg.UseInternalDB)
		assert.Equal(t, "postgres://u:p@host:5432/accounts", cfg.DatabaseDSN)
		assert.Equal(t, "accounts.db", cfg.DatabasePath)
		assert.Equal(t, 10*time.Second, cfg.StorageTimeout)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			BindInterface:  "defaults.local",
			BindPort:       1234,
			UseInternalDB:  true,
			DatabaseDSN:    "dsn",
			DatabasePath:   "path.db",
			StorageTimeout: 2 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults.local", cfg.BindInterface)
		assert.Equal(t, 1234, cfg.BindPort)
		assert.Equal(t, true, cfg.UseInternalDB)
		assert.Equal(t, "dsn", cfg.DatabaseDSN)
		assert.Equal(t, "path.db", cfg.DatabasePath)
		assert.Equal(t, 2*time.Second, cfg.StorageTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

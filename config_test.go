package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.toml",
		`init = ": sq dup * ;"`,
		`prelude = ["lib.sltf", "/abs/other.sltf"]`,
		`prompt = "> "`,
		`history = ""`,
		`trace = true`,
		`verbosity = -1`,
		`queue-limit = 1000`,
		`timeout = "1.5s"`,
	)
	writeFile(t, dir, "unknown.toml",
		`prompt = "> "`,
		`colour = "red"`,
	)
	writeFile(t, dir, "negative.toml",
		`queue-limit = -3`,
	)
	writeFile(t, dir, "invalid.toml",
		`prompt = `,
	)

	t.Run("good", func(t *testing.T) {
		cfg, err := loadConfig(filepath.Join(dir, "good.toml"))
		require.NoError(t, err)
		assert.Equal(t, ": sq dup * ;", cfg.Init)
		assert.Equal(t, "> ", cfg.Prompt)
		assert.Equal(t, "  ", cfg.ContinuePrompt, "expected default continue prompt")
		assert.Equal(t, "", cfg.History, "expected history to be disabled")
		assert.True(t, cfg.Trace)
		assert.Equal(t, -1, cfg.Verbosity)
		assert.Equal(t, 1000, cfg.QueueLimit)
		assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)
		assert.Equal(t, []string{
			filepath.Join(dir, "lib.sltf"),
			"/abs/other.sltf",
		}, cfg.preludePaths())
	})

	for _, tc := range []struct {
		name string
		err  string
	}{
		{"unknown.toml", "unknown keys: colour"},
		{"negative.toml", "queue-limit must not be negative, got -3"},
		{"invalid.toml", "parse error in"},
		{"missing.toml", "cannot read"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadConfig(filepath.Join(dir, tc.name))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.err)
		})
	}
}

func TestLoadConfig_default(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg, "no file means defaults")

	writeFile(t, dir, configFile, `prompt = "sltf> "`)
	cfg, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "sltf> ", cfg.Prompt)
	assert.NotEqual(t, "", cfg.Dir)
}

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const configFile = "sltf.toml"

// Config holds driver settings. It is loaded from an sltf.toml file, then
// overridden by any command line flags given.
type Config struct {
	// Init is program text run before any input, e.g. a set of definitions.
	Init string `toml:"init"`

	// Prelude lists source files fed, in order, before any other input.
	Prelude []string `toml:"prelude"`

	Prompt         string `toml:"prompt"`
	ContinuePrompt string `toml:"continue-prompt"`
	History        string `toml:"history"`

	Trace      bool          `toml:"trace"`
	Verbosity  int           `toml:"verbosity"`
	QueueLimit int           `toml:"queue-limit"`
	Timeout    time.Duration `toml:"timeout"`

	// Dir is the directory containing the loaded config file, if any;
	// relative Prelude paths are resolved against it.
	Dir string `toml:"-"`
}

func defaultConfig() Config {
	cfg := Config{
		ContinuePrompt: "  ",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.History = filepath.Join(home, ".sltf_history")
	}
	return cfg
}

// loadConfig reads the named config file over the defaults. With no name, an
// sltf.toml in the working directory is used if one exists.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		path = configFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if err := cfg.decode(string(data)); err != nil {
		return cfg, fmt.Errorf("parse error in %s: %w", path, err)
	}

	cfg.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return cfg, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) decode(data string) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fmt.Errorf("unknown keys: %v", strings.Join(keys, ", "))
	}
	if cfg.QueueLimit < 0 {
		return fmt.Errorf("queue-limit must not be negative, got %v", cfg.QueueLimit)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %v", cfg.Timeout)
	}
	return nil
}

// preludePaths returns Prelude with relative entries resolved against Dir.
func (cfg Config) preludePaths() []string {
	paths := make([]string, len(cfg.Prelude))
	for i, path := range cfg.Prelude {
		if cfg.Dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(cfg.Dir, path)
		}
		paths[i] = path
	}
	return paths
}

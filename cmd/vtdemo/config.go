package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config configures the demo terminal. It is loaded from an optional TOML
// file and filled in with defaults the way the teacher's cli.Options does,
// field by field rather than via a zero-value struct merge.
type Config struct {
	Shell           string  `toml:"shell"`
	Cols            int     `toml:"cols"`
	Rows            int     `toml:"rows"`
	ScrollbackLines int     `toml:"scrollback_lines"`
	ScrollbackRatio float64 `toml:"scrollback_ratio"`
}

func defaultConfig() Config {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return Config{
		Shell:           shell,
		Cols:            80,
		Rows:            24,
		ScrollbackLines: 2000,
		ScrollbackRatio: 0.5,
	}
}

// loadConfig reads path if it exists, overlaying any set fields onto the
// defaults. A missing file is not an error; an unparsable one is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

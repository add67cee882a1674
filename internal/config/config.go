package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Defaults used when neither flags, environment, nor a config file
// provide a value.
const (
	DefaultBackendURL = "http://localhost:8000"
	DefaultScratchDir = "temp_media"
	DefaultLogFile    = "ragtui.log"
)

// Config holds the two externally configured values the client depends
// on: where the answering backend lives and where uploaded media is
// staged for the session.
type Config struct {
	BackendURL string `json:"backendUrl"`
	ScratchDir string `json:"scratchDir"`
	LogFile    string `json:"logFile"`
}

// Default returns a config populated with defaults.
func Default() Config {
	return Config{
		BackendURL: DefaultBackendURL,
		ScratchDir: DefaultScratchDir,
		LogFile:    DefaultLogFile,
	}
}

// Load reads a JSON config file and overlays it on the defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the config for values the client cannot run without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BackendURL) == "" {
		return fmt.Errorf("backend URL must not be empty")
	}
	if !strings.HasPrefix(c.BackendURL, "http://") && !strings.HasPrefix(c.BackendURL, "https://") {
		return fmt.Errorf("backend URL %q must start with http:// or https://", c.BackendURL)
	}
	if strings.TrimSpace(c.ScratchDir) == "" {
		return fmt.Errorf("scratch directory must not be empty")
	}
	return nil
}

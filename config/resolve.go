package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/testpilot-io/testpilot/logger"
)

// MissingFieldError is returned by Validate when a required agent field is
// absent after the CLI/file merge. The message names both ways to supply
// the value.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Please set agent.%s in the config.toml file or pass it as the --%s CLI option.", e.Field, e.Field)
}

// Overrides carries CLI-supplied values into the precedence merge. String
// fields override the file value when non-empty; the CLI layer only fills
// Language and Framework when the flag was explicitly set. Boolean flags
// override only when true: a CLI false is indistinguishable from "not
// set", so it never clears a file-set true.
type Overrides struct {
	Prompt    string
	URL       string
	Language  string
	Framework string
	Clean     bool
	Debug     bool
	Headless  bool
}

// Resolve overlays CLI-supplied values onto the file-loaded configuration
// and returns the effective configuration. The input is not mutated.
func Resolve(file *Config, o Overrides) *Config {
	cfg := *file

	if o.Prompt != "" {
		cfg.Agent.Prompt = o.Prompt
	}
	if o.URL != "" {
		cfg.Agent.URL = o.URL
	}
	if o.Language != "" {
		cfg.Agent.Language = Language(o.Language)
	}
	if o.Framework != "" {
		cfg.Agent.Framework = Framework(o.Framework)
	}
	if o.Headless {
		cfg.Runtime.Headless = true
	}
	if o.Debug {
		cfg.Runtime.LogLevel = "debug"
	}
	if o.Clean {
		cfg.Runtime.Clean = true
	}

	return &cfg
}

// Validate checks that the required agent fields are present. The first
// missing field is reported; callers should treat this as a user-facing
// early exit, not a crash.
func (c *Config) Validate() error {
	if c.Agent.URL == "" {
		return &MissingFieldError{Field: "url"}
	}
	if c.Agent.Prompt == "" {
		return &MissingFieldError{Field: "prompt"}
	}
	return nil
}

// ApplySideEffects applies the process-wide effects implied by the
// resolved configuration: logger verbosity, environment variables consumed
// by agent child processes, and the pre-run cleanup of the test directory.
// Each effect is idempotent. Cleanup runs before any validation of
// required fields and removes the directory contents, not the directory.
func ApplySideEffects(ctx context.Context, cfg *Config, testDir string, log logger.Logger) {
	log.SetLevel(cfg.Runtime.LogLevel)
	if strings.EqualFold(cfg.Runtime.LogLevel, "debug") {
		os.Setenv("LOG_LEVEL", "DEBUG")
	}

	if cfg.Runtime.Headless {
		os.Setenv("HEADLESS", "true")
	}

	if cfg.Runtime.Clean {
		log.Info(ctx, "deleting files in the test directory", logger.Fields{
			"test_dir": testDir,
		})
		cleanDirContents(testDir)
	}
}

// cleanDirContents removes everything inside dir while keeping dir itself.
// Errors are deliberately ignored; a missing directory is fine.
func cleanDirContents(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		os.RemoveAll(filepath.Join(dir, entry.Name()))
	}
}

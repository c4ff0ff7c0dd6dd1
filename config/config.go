package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Language represents the language the generated tests are written in.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageTypescript Language = "typescript"
	LanguageJavascript Language = "javascript"
)

// IsValid checks if the language is valid.
func (l Language) IsValid() bool {
	switch l {
	case LanguagePython, LanguageTypescript, LanguageJavascript:
		return true
	default:
		return false
	}
}

// Framework represents the browser test framework to scaffold for.
type Framework string

const (
	FrameworkPlaywright Framework = "playwright"
	FrameworkCypress    Framework = "cypress"
)

// IsValid checks if the framework is valid.
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkPlaywright, FrameworkCypress:
		return true
	default:
		return false
	}
}

// AgentConfig holds the settings handed to the generation agent.
type AgentConfig struct {
	Prompt    string
	URL       string
	Language  Language
	Framework Framework
}

// RuntimeConfig holds process-wide behaviour settings.
type RuntimeConfig struct {
	Headless bool
	LogLevel string
	Clean    bool
}

// GenerateConfig holds the model backend settings for the generation agent.
type GenerateConfig struct {
	Region    string
	Model     string
	MaxTokens int
}

// Config is the effective configuration for a single CLI run.
type Config struct {
	Agent    AgentConfig
	Runtime  RuntimeConfig
	Generate GenerateConfig
}

// Load reads the configuration file and returns it merged over built-in
// defaults. A missing config file is not an error; defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TESTPILOT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("agent.prompt", "")
	v.SetDefault("agent.url", "")
	v.SetDefault("agent.language", string(LanguagePython))
	v.SetDefault("agent.framework", string(FrameworkPlaywright))

	v.SetDefault("config.headless", false)
	v.SetDefault("config.log_level", "info")
	v.SetDefault("config.clean", false)

	v.SetDefault("generate.region", "us-east-1")
	v.SetDefault("generate.model", "anthropic.claude-sonnet-4-5")
	v.SetDefault("generate.max_tokens", 8192)

	// A missing file means defaults apply; a malformed one aborts.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config

	config.Agent.Prompt = v.GetString("agent.prompt")
	config.Agent.URL = v.GetString("agent.url")
	config.Agent.Language = Language(v.GetString("agent.language"))
	config.Agent.Framework = Framework(v.GetString("agent.framework"))

	config.Runtime.Headless = v.GetBool("config.headless")
	config.Runtime.LogLevel = v.GetString("config.log_level")
	config.Runtime.Clean = v.GetBool("config.clean")

	config.Generate.Region = v.GetString("generate.region")
	config.Generate.Model = v.GetString("generate.model")
	config.Generate.MaxTokens = v.GetInt("generate.max_tokens")

	return &config, nil
}

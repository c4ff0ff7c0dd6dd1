package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/testpilot-io/testpilot/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a config file template at ./config.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := "config.toml"

			if _, err := os.Stat(configPath); err == nil {
				fmt.Println("Config file already exists at " + configPath)
				return nil
			}

			template := `# testpilot configuration

[agent]
prompt = ""
url = ""
language = "python"
framework = "playwright"

[config]
headless = false
log_level = "info"
clean = false
`
			if err := os.WriteFile(configPath, []byte(template), 0600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			fmt.Println("Config file created at " + configPath)
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	var flagConfig string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}

			fmt.Printf("Prompt:    %s\n", orUnset(cfg.Agent.Prompt))
			fmt.Printf("URL:       %s\n", orUnset(cfg.Agent.URL))
			fmt.Printf("Language:  %s\n", cfg.Agent.Language)
			fmt.Printf("Framework: %s\n", cfg.Agent.Framework)
			fmt.Printf("Headless:  %t\n", cfg.Runtime.Headless)
			fmt.Printf("Log level: %s\n", cfg.Runtime.LogLevel)
			fmt.Printf("Clean:     %t\n", cfg.Runtime.Clean)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to the config file (default: ./config.toml)")
	return cmd
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/testpilot-io/testpilot/config"
	"github.com/testpilot-io/testpilot/generate"
	"github.com/testpilot-io/testpilot/logger"
	"github.com/testpilot-io/testpilot/scaffold"
	"github.com/testpilot-io/testpilot/toolchain"
)

func newStartCmd() *cobra.Command {
	var (
		flagConfig    string
		flagTestDir   string
		flagPrompt    string
		flagURL       string
		flagClean     bool
		flagDebug     bool
		flagHeadless  bool
		flagLanguage  string
		flagFramework string
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the test generation agent",
		Long:  "Merges the config file with CLI flags, prepares the test project skeleton, and invokes the generation agent with your prompt and target URL.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			fileCfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}

			overrides := config.Overrides{
				Prompt:   flagPrompt,
				URL:      flagURL,
				Clean:    flagClean,
				Debug:    flagDebug,
				Headless: flagHeadless,
			}
			// Language and framework carry non-empty CLI defaults, so only
			// an explicitly set flag may override the config file.
			if cmd.Flags().Changed("language") {
				overrides.Language = flagLanguage
			}
			if cmd.Flags().Changed("framework") {
				overrides.Framework = flagFramework
			}

			cfg := config.Resolve(fileCfg, overrides)

			if !cfg.Agent.Language.IsValid() {
				return fmt.Errorf("unsupported language %q (expected python, typescript or javascript)", cfg.Agent.Language)
			}
			if !cfg.Agent.Framework.IsValid() {
				return fmt.Errorf("unsupported framework %q (expected playwright or cypress)", cfg.Agent.Framework)
			}

			log := logger.NewLogrusLogger(cfg.Runtime.LogLevel)
			config.ApplySideEffects(ctx, cfg, flagTestDir, log)

			if err := cfg.Validate(); err != nil {
				var missing *config.MissingFieldError
				if errors.As(err, &missing) {
					// Known user error: remediation message, zero exit.
					fmt.Fprintln(os.Stderr, missing.Error())
					return nil
				}
				return err
			}

			invoker := toolchain.NewExecInvoker()
			checker := toolchain.NewChecker(invoker, log)

			// Every other tool depends on the Node.js runtime.
			if _, err := checker.Node(ctx); err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				return nil
			}

			scaffolder := scaffold.NewScaffolder(flagTestDir, invoker, log)

			switch cfg.Agent.Framework {
			case config.FrameworkPlaywright:
				if _, ok := checker.Npm(ctx); !ok {
					log.Warn(ctx, "npm not found, scaffolding may fail", nil)
				}
				if _, ok := checker.Playwright(ctx); !ok {
					log.Warn(ctx, "playwright CLI not found, relying on npm init", nil)
				}
				if err := scaffolder.Playwright(ctx, cfg.Agent.Language, cfg.Runtime.Clean); err != nil {
					return err
				}
				if cfg.Agent.Language != config.LanguagePython {
					if ok := scaffolder.InstallPlaywrightBrowsers(ctx); !ok {
						log.Warn(ctx, "could not install playwright browsers, continuing without them", nil)
					}
				}
			case config.FrameworkCypress:
				if _, ok := checker.Npm(ctx); !ok {
					log.Warn(ctx, "npm not found, scaffolding may fail", nil)
				}
				if _, ok := checker.Cypress(ctx); !ok {
					log.Warn(ctx, "cypress CLI not found, relying on npx", nil)
				}
				if err := scaffolder.Cypress(ctx, cfg.Agent.Language, cfg.Runtime.Clean); err != nil {
					return err
				}
				if cfg.Agent.Language != config.LanguagePython {
					if ok := scaffolder.InstallCypressBinary(ctx); !ok {
						log.Warn(ctx, "could not install the cypress binary, continuing without it", nil)
					}
				}
			}

			generator, err := generate.NewBedrockGenerator(ctx, cfg.Generate.Region, cfg.Generate.Model, cfg.Generate.MaxTokens)
			if err != nil {
				return err
			}

			runner := generate.NewRunner(generator, flagTestDir, log)
			path, err := runner.Run(ctx, generate.Request{
				Prompt:    cfg.Agent.Prompt,
				URL:       cfg.Agent.URL,
				Language:  cfg.Agent.Language,
				Framework: cfg.Agent.Framework,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Generated test written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to the config file (default: ./config.toml)")
	cmd.Flags().StringVar(&flagTestDir, "test-dir", "tests", "Directory the test project is scaffolded into")
	cmd.Flags().StringVar(&flagPrompt, "prompt", "", "A prompt describing the scope of your tests")
	cmd.Flags().StringVar(&flagURL, "url", "", "A url that acts as an entrypoint to the app you're testing")
	cmd.Flags().BoolVar(&flagClean, "clean", false, "Delete files from the test directory before starting the agent")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug mode for additional logs")
	cmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run the browser in headless mode")
	cmd.Flags().StringVar(&flagLanguage, "language", "python", "The programming language to generate tests in")
	cmd.Flags().StringVar(&flagFramework, "framework", "playwright", "The framework to use for testing")

	return cmd
}

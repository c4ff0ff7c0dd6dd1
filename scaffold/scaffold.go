// Package scaffold materializes a working browser test project skeleton
// (directory layout, config files, installed dependencies) for the
// generation agent to write test files into.
package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/testpilot-io/testpilot/config"
	"github.com/testpilot-io/testpilot/logger"
	"github.com/testpilot-io/testpilot/toolchain"
)

// Scaffolder prepares a test directory for a chosen framework and
// language. All steps run strictly in order; files must exist before any
// install command runs against them.
type Scaffolder struct {
	testDir string
	invoker toolchain.Invoker
	logger  logger.Logger
}

// NewScaffolder creates a scaffolder rooted at testDir.
func NewScaffolder(testDir string, invoker toolchain.Invoker, log logger.Logger) *Scaffolder {
	return &Scaffolder{
		testDir: testDir,
		invoker: invoker,
		logger:  log,
	}
}

// Playwright scaffolds a Playwright test environment. For python the
// directory alone is enough; the generated test suite carries its own
// dependency declarations.
func (s *Scaffolder) Playwright(ctx context.Context, language config.Language, clean bool) error {
	if err := s.prepareDir(clean); err != nil {
		return err
	}

	if language == config.LanguagePython {
		return nil
	}

	lang := "js"
	if language == config.LanguageTypescript {
		lang = "Typescript"
	}

	s.logger.Info(ctx, "running the playwright install command", logger.Fields{
		"language": string(language),
	})
	err := s.invoker.Run(ctx, s.testDir,
		"npm", "init", "playwright", "--",
		"--yes", "--quiet", "--install-deps", "--no-examples",
		"--browser=chromium", "--lang="+lang, ".")
	if err != nil {
		return fmt.Errorf("playwright init failed: %w", err)
	}

	s.logger.Info(ctx, "adding dev dependencies", nil)
	if err := s.invoker.Run(ctx, s.testDir, "npm", "install", "uuid", "--save-dev"); err != nil {
		return fmt.Errorf("npm install uuid failed: %w", err)
	}

	return nil
}

// Cypress scaffolds a Cypress test environment by writing the fixed
// template files and installing the declared dependencies.
func (s *Scaffolder) Cypress(ctx context.Context, language config.Language, clean bool) error {
	if err := s.prepareDir(clean); err != nil {
		return err
	}

	if language == config.LanguagePython {
		return nil
	}

	s.logger.Info(ctx, "setting up cypress environment", nil)
	for name, content := range cypressFiles(language) {
		s.logger.Info(ctx, "adding a "+name+" file", nil)
		path := filepath.Join(s.testDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	s.logger.Info(ctx, "installing npm dependencies", nil)
	if err := s.invoker.Run(ctx, s.testDir, "npm", "install"); err != nil {
		return fmt.Errorf("npm install failed: %w", err)
	}

	return nil
}

// InstallPlaywrightBrowsers verifies and installs the Chromium binary for
// Playwright. Failure is reported as false, never as an error; the caller
// decides whether to proceed without a bundled browser.
func (s *Scaffolder) InstallPlaywrightBrowsers(ctx context.Context) bool {
	s.logger.Info(ctx, "checking that playwright browsers are installed", nil)
	if err := s.invoker.Run(ctx, s.testDir, "playwright", "install", "chromium"); err != nil {
		return false
	}
	return true
}

// InstallCypressBinary verifies and installs the Cypress browser-automation
// runtime. Same non-fatal failure semantics as the Playwright variant.
func (s *Scaffolder) InstallCypressBinary(ctx context.Context) bool {
	s.logger.Info(ctx, "checking that the cypress binary is installed", nil)
	if err := s.invoker.Run(ctx, s.testDir, "npx", "--yes", "cypress", "install"); err != nil {
		return false
	}
	return true
}

// prepareDir optionally deletes and then recreates the test directory.
// Deletion errors are ignored; the directory may not exist yet.
func (s *Scaffolder) prepareDir(clean bool) error {
	if clean {
		os.RemoveAll(s.testDir)
	}
	if err := os.MkdirAll(s.testDir, 0755); err != nil {
		return fmt.Errorf("failed to create test directory: %w", err)
	}
	return nil
}

// cypressFiles returns the exact file set the Cypress scaffold writes for
// a language. Typescript gets a framework config plus a tsconfig;
// javascript gets the simpler framework config only.
func cypressFiles(language config.Language) map[string]string {
	files := map[string]string{
		"package.json": packageJSONTemplate,
		".gitignore":   gitignoreTemplate,
	}
	switch language {
	case config.LanguageTypescript:
		files["cypress.config.ts"] = cypressConfigTSTemplate
		files["tsconfig.json"] = tsconfigTemplate
	case config.LanguageJavascript:
		files["cypress.config.js"] = cypressConfigJSTemplate
	}
	return files
}

package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testpilot-io/testpilot/config"
	"github.com/testpilot-io/testpilot/logger"
	"github.com/testpilot-io/testpilot/toolchain"
)

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestCypress_Typescript(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "tests")
	invoker := toolchain.NewFakeInvoker(nil)
	s := NewScaffolder(dir, invoker, logger.NewTestLogger())

	require.NoError(t, s.Cypress(ctx, config.LanguageTypescript, false))

	assert.ElementsMatch(t, []string{
		"package.json", ".gitignore", "cypress.config.ts", "tsconfig.json",
	}, dirEntries(t, dir))

	// Template files are written byte-for-byte.
	files := map[string]string{
		"package.json":      packageJSONTemplate,
		".gitignore":        gitignoreTemplate,
		"cypress.config.ts": cypressConfigTSTemplate,
		"tsconfig.json":     tsconfigTemplate,
	}
	for name, want := range files {
		got, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, want, string(got), name)
	}

	assert.Equal(t, []string{"npm install"}, invoker.CommandLines())
}

func TestCypress_Javascript(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "tests")
	invoker := toolchain.NewFakeInvoker(nil)
	s := NewScaffolder(dir, invoker, logger.NewTestLogger())

	require.NoError(t, s.Cypress(ctx, config.LanguageJavascript, false))

	assert.ElementsMatch(t, []string{
		"package.json", ".gitignore", "cypress.config.js",
	}, dirEntries(t, dir))

	got, err := os.ReadFile(filepath.Join(dir, "cypress.config.js"))
	require.NoError(t, err)
	assert.Equal(t, cypressConfigJSTemplate, string(got))
}

func TestCypress_PythonOnlyCreatesDirectory(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "tests")
	invoker := toolchain.NewFakeInvoker(nil)
	s := NewScaffolder(dir, invoker, logger.NewTestLogger())

	require.NoError(t, s.Cypress(ctx, config.LanguagePython, false))

	assert.Empty(t, dirEntries(t, dir))
	assert.Empty(t, invoker.Calls(), "no package-manager command should run for python")
}

func TestCypress_CleanEmptiesDirectoryFirst(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "tests")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.cy.ts"), []byte("old"), 0644))

	s := NewScaffolder(dir, toolchain.NewFakeInvoker(nil), logger.NewTestLogger())
	require.NoError(t, s.Cypress(ctx, config.LanguageTypescript, true))

	names := dirEntries(t, dir)
	assert.NotContains(t, names, "stale.cy.ts")
	assert.Contains(t, names, "package.json")
}

func TestCypress_NoCleanKeepsExistingFiles(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "tests")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.cy.ts"), []byte("keep"), 0644))

	s := NewScaffolder(dir, toolchain.NewFakeInvoker(nil), logger.NewTestLogger())
	require.NoError(t, s.Cypress(ctx, config.LanguageTypescript, false))

	assert.Contains(t, dirEntries(t, dir), "keep.cy.ts")
}

func TestCypress_InstallFailure(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "tests")
	invoker := toolchain.NewFakeInvoker(nil)
	invoker.FailRun = []string{"npm install"}

	s := NewScaffolder(dir, invoker, logger.NewTestLogger())
	err := s.Cypress(ctx, config.LanguageTypescript, false)

	assert.ErrorContains(t, err, "npm install failed")
}

func TestPlaywright_Python(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "tests")
	invoker := toolchain.NewFakeInvoker(nil)
	s := NewScaffolder(dir, invoker, logger.NewTestLogger())

	require.NoError(t, s.Playwright(ctx, config.LanguagePython, false))

	assert.Empty(t, dirEntries(t, dir))
	assert.Empty(t, invoker.Calls())
}

func TestPlaywright_InitCommands(t *testing.T) {
	tests := []struct {
		name     string
		language config.Language
		lang     string
	}{
		{"typescript", config.LanguageTypescript, "Typescript"},
		{"javascript", config.LanguageJavascript, "js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			dir := filepath.Join(t.TempDir(), "tests")
			invoker := toolchain.NewFakeInvoker(nil)
			s := NewScaffolder(dir, invoker, logger.NewTestLogger())

			require.NoError(t, s.Playwright(ctx, tt.language, false))

			lines := invoker.CommandLines()
			require.Len(t, lines, 2)
			assert.Equal(t, "npm init playwright -- --yes --quiet --install-deps --no-examples --browser=chromium --lang="+tt.lang+" .", lines[0])
			assert.Equal(t, "npm install uuid --save-dev", lines[1])

			// Both commands run inside the test directory.
			for _, call := range invoker.Calls() {
				assert.Equal(t, dir, call.Dir)
			}
		})
	}
}

func TestPlaywright_InitFailure(t *testing.T) {
	ctx := context.Background()
	invoker := toolchain.NewFakeInvoker(nil)
	invoker.FailRun = []string{"npm init playwright"}

	s := NewScaffolder(filepath.Join(t.TempDir(), "tests"), invoker, logger.NewTestLogger())
	err := s.Playwright(ctx, config.LanguageTypescript, false)

	assert.ErrorContains(t, err, "playwright init failed")
}

func TestInstallPlaywrightBrowsers(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("success", func(t *testing.T) {
		s := NewScaffolder(dir, toolchain.NewFakeInvoker(nil), logger.NewTestLogger())
		assert.True(t, s.InstallPlaywrightBrowsers(ctx))
	})

	t.Run("failure reports false", func(t *testing.T) {
		invoker := toolchain.NewFakeInvoker(nil)
		invoker.FailRun = []string{"playwright install"}
		s := NewScaffolder(dir, invoker, logger.NewTestLogger())
		assert.False(t, s.InstallPlaywrightBrowsers(ctx))
	})
}

func TestInstallCypressBinary(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("success", func(t *testing.T) {
		invoker := toolchain.NewFakeInvoker(nil)
		s := NewScaffolder(dir, invoker, logger.NewTestLogger())
		assert.True(t, s.InstallCypressBinary(ctx))
		assert.Equal(t, []string{"npx --yes cypress install"}, invoker.CommandLines())
	})

	t.Run("failure reports false", func(t *testing.T) {
		invoker := toolchain.NewFakeInvoker(nil)
		invoker.FailRun = []string{"npx --yes cypress install"}
		s := NewScaffolder(dir, invoker, logger.NewTestLogger())
		assert.False(t, s.InstallCypressBinary(ctx))
	})
}

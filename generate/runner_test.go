package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testpilot-io/testpilot/config"
	"github.com/testpilot-io/testpilot/logger"
)

type stubGenerator struct {
	code []byte
	err  error
	req  Request
}

func (s *stubGenerator) Generate(ctx context.Context, req Request) ([]byte, error) {
	s.req = req
	return s.code, s.err
}

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	stub := &stubGenerator{code: []byte("test('login', async () => {})\n")}
	runner := NewRunner(stub, dir, logger.NewTestLogger())

	req := Request{
		Prompt:    "check the login flow",
		URL:       "http://example.com",
		Language:  config.LanguageTypescript,
		Framework: config.FrameworkPlaywright,
	}
	path, err := runner.Run(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, req, stub.req)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".spec.ts"), "got %s", path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, stub.code, content)
}

func TestRunner_GenerationErrorPropagates(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	stub := &stubGenerator{err: errors.New("model unavailable")}
	runner := NewRunner(stub, dir, logger.NewTestLogger())

	_, err := runner.Run(ctx, Request{Prompt: "p", URL: "u"})
	assert.ErrorContains(t, err, "generation failed")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no file should be written on failure")
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name      string
		language  config.Language
		framework config.Framework
		suffix    string
	}{
		{"playwright typescript", config.LanguageTypescript, config.FrameworkPlaywright, ".spec.ts"},
		{"playwright javascript", config.LanguageJavascript, config.FrameworkPlaywright, ".spec.js"},
		{"cypress typescript", config.LanguageTypescript, config.FrameworkCypress, ".cy.ts"},
		{"cypress javascript", config.LanguageJavascript, config.FrameworkCypress, ".cy.js"},
		{"python either framework", config.LanguagePython, config.FrameworkPlaywright, ".py"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := fileName("abcd1234", tt.language, tt.framework)
			assert.True(t, strings.HasSuffix(name, tt.suffix), "got %s", name)
			assert.Contains(t, name, "abcd1234")
		})
	}
}

func TestRunner_UniqueFileNames(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	stub := &stubGenerator{code: []byte("assert True\n")}
	runner := NewRunner(stub, dir, logger.NewTestLogger())

	req := Request{Prompt: "p", URL: "u", Language: config.LanguagePython, Framework: config.FrameworkPlaywright}

	first, err := runner.Run(ctx, req)
	require.NoError(t, err)
	second, err := runner.Run(ctx, req)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

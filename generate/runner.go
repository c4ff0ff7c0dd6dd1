package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/testpilot-io/testpilot/config"
	"github.com/testpilot-io/testpilot/internal/uuidutil"
	"github.com/testpilot-io/testpilot/logger"
)

// Runner drives a single generation run: it calls the generator and
// writes the produced code into the scaffolded test directory.
type Runner struct {
	generator Generator
	testDir   string
	logger    logger.Logger
}

// NewRunner creates a new generation runner rooted at testDir.
func NewRunner(generator Generator, testDir string, log logger.Logger) *Runner {
	return &Runner{
		generator: generator,
		testDir:   testDir,
		logger:    log,
	}
}

// Run generates test code for the request and writes it to a uniquely
// named file in the test directory. It returns the written path.
func (r *Runner) Run(ctx context.Context, req Request) (string, error) {
	runID := uuidutil.Short()
	log := r.logger.WithField("run_id", runID)

	log.Info(ctx, "invoking the test generation agent", logger.Fields{
		"url":       req.URL,
		"language":  string(req.Language),
		"framework": string(req.Framework),
	})

	code, err := r.generator.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	name := fileName(runID, req.Language, req.Framework)
	path := filepath.Join(r.testDir, name)
	if err := os.WriteFile(path, code, 0644); err != nil {
		return "", fmt.Errorf("failed to write generated test file: %w", err)
	}

	log.Info(ctx, "wrote generated test file", logger.Fields{
		"path": path,
		"size": len(code),
	})
	return path, nil
}

// fileName picks an extension the target framework's runner will pick up.
func fileName(runID string, language config.Language, framework config.Framework) string {
	switch language {
	case config.LanguageTypescript:
		if framework == config.FrameworkCypress {
			return fmt.Sprintf("testpilot_%s.cy.ts", runID)
		}
		return fmt.Sprintf("testpilot_%s.spec.ts", runID)
	case config.LanguageJavascript:
		if framework == config.FrameworkCypress {
			return fmt.Sprintf("testpilot_%s.cy.js", runID)
		}
		return fmt.Sprintf("testpilot_%s.spec.js", runID)
	default:
		return fmt.Sprintf("test_pilot_%s.py", runID)
	}
}

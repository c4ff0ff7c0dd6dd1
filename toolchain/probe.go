package toolchain

import (
	"context"
	"errors"
	"strings"

	"github.com/testpilot-io/testpilot/logger"
)

// ErrNodeMissing is returned when the Node.js runtime cannot be found.
// Every other tool in the chain depends on it, so its absence is fatal.
var ErrNodeMissing = errors.New("could not find a Node.js installation, please install it from https://nodejs.org")

// Checker probes the system for the external tools the scaffolder needs.
// Results are not cached; each call re-probes.
type Checker struct {
	invoker Invoker
	logger  logger.Logger
}

// NewChecker creates a new toolchain checker.
func NewChecker(invoker Invoker, log logger.Logger) *Checker {
	return &Checker{
		invoker: invoker,
		logger:  log,
	}
}

// Node checks that the Node.js runtime is installed and returns its
// version. Unlike the other probes, a missing runtime is an error.
func (c *Checker) Node(ctx context.Context) (string, error) {
	c.logger.Info(ctx, "checking that Node.js is installed", nil)
	out, err := c.invoker.Output(ctx, "", "node", "-v")
	if err != nil {
		return "", ErrNodeMissing
	}
	version := strings.TrimSpace(string(out))
	c.logger.Info(ctx, "found node version", logger.Fields{"version": version})
	return version, nil
}

// Npm checks whether npm is installed. Absence is reported as ok=false,
// never as an error.
func (c *Checker) Npm(ctx context.Context) (string, bool) {
	return c.probe(ctx, "npm", "npm", "-v")
}

// Playwright checks whether the playwright CLI is installed.
func (c *Checker) Playwright(ctx context.Context) (string, bool) {
	return c.probe(ctx, "playwright", "playwright", "--version")
}

// Cypress checks whether the cypress CLI is installed.
func (c *Checker) Cypress(ctx context.Context) (string, bool) {
	return c.probe(ctx, "cypress", "cypress", "--version")
}

func (c *Checker) probe(ctx context.Context, tool, name string, args ...string) (string, bool) {
	c.logger.Info(ctx, "checking that "+tool+" is installed", nil)
	out, err := c.invoker.Output(ctx, "", name, args...)
	if err != nil {
		return "", false
	}
	version := strings.TrimSpace(string(out))
	c.logger.Info(ctx, "found "+tool+" version", logger.Fields{"version": version})
	return version, true
}

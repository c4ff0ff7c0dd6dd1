// Package toolchain probes for and invokes the external JavaScript
// toolchain (node, npm, and the test framework CLIs).
package toolchain

import (
	"context"
	"os"
	"os/exec"
)

// Invoker abstracts subprocess execution so probing and scaffolding logic
// can be tested without spawning real processes.
type Invoker interface {
	// Output runs the named tool in dir and returns its standard output.
	// An empty dir runs the tool in the current working directory.
	Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error)

	// Run runs the named tool in dir, streaming its output to the
	// terminal, and returns an error on a non-zero exit or launch failure.
	Run(ctx context.Context, dir string, name string, args ...string) error
}

// ExecInvoker is the production Invoker backed by os/exec. Calls block
// until the spawned process exits; no timeout is imposed at this layer.
type ExecInvoker struct{}

// NewExecInvoker creates a new ExecInvoker.
func NewExecInvoker() *ExecInvoker {
	return &ExecInvoker{}
}

// Output runs the named tool and captures its standard output.
func (i *ExecInvoker) Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.Output()
}

// Run runs the named tool with output attached to the terminal. Installer
// commands (npm init, npm install) are interactive-looking enough that
// hiding their output makes failures hard to diagnose.
func (i *ExecInvoker) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

package toolchain

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Call records a single invocation against the FakeInvoker.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// FakeInvoker is an Invoker implementation for testing that returns canned
// results and records every call. The zero value fails every invocation.
type FakeInvoker struct {
	mu sync.Mutex

	// Outputs maps "name arg1 arg2 ..." to the bytes Output should return.
	// Commands without an entry fail as if the tool were absent.
	Outputs map[string]string

	// FailRun lists command prefixes for which Run should fail. An empty
	// list makes every Run succeed.
	FailRun []string

	calls []Call
}

// NewFakeInvoker creates a FakeInvoker with the given canned outputs.
func NewFakeInvoker(outputs map[string]string) *FakeInvoker {
	return &FakeInvoker{Outputs: outputs}
}

// Output returns the canned output for the command, or an error when none
// is configured.
func (f *FakeInvoker) Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	f.record(dir, name, args)
	key := commandKey(name, args)
	if out, ok := f.Outputs[key]; ok {
		return []byte(out), nil
	}
	return nil, errors.New("exec: " + name + ": executable file not found in $PATH")
}

// Run succeeds unless the command matches a FailRun prefix.
func (f *FakeInvoker) Run(ctx context.Context, dir string, name string, args ...string) error {
	f.record(dir, name, args)
	key := commandKey(name, args)
	for _, prefix := range f.FailRun {
		if strings.HasPrefix(key, prefix) {
			return errors.New("exit status 1")
		}
	}
	return nil
}

// Calls returns a copy of all recorded invocations.
func (f *FakeInvoker) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := make([]Call, len(f.calls))
	copy(calls, f.calls)
	return calls
}

// CommandLines renders every recorded call as "name arg1 arg2 ...".
func (f *FakeInvoker) CommandLines() []string {
	calls := f.Calls()
	lines := make([]string, 0, len(calls))
	for _, c := range calls {
		lines = append(lines, commandKey(c.Name, c.Args))
	}
	return lines
}

func (f *FakeInvoker) record(dir, name string, args []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Dir: dir, Name: name, Args: args})
}

func commandKey(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

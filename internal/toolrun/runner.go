// Package toolrun invokes external analysis tools as bounded child processes
// and normalizes their native output into diagnostics. Tools are described by
// declarative specs; adding a tool is adding a registry entry, not code.
package toolrun

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"sync"
)

// ExecRunner abstracts command execution for testability.
type ExecRunner interface {
	// LookPath checks if a binary exists in PATH.
	LookPath(name string) (string, error)

	// Run executes a command in dir and returns its output. An empty dir
	// runs in the current working directory.
	Run(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements ExecRunner using os/exec.
type RealRunner struct{}

// NewRealRunner creates a runner backed by the host system.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// LookPath checks if a binary exists in PATH.
func (r *RealRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes a command and returns its output. The caller bounds execution
// through ctx; the child process is reaped before Run returns.
func (r *RealRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// MockRunner implements ExecRunner for testing.
type MockRunner struct {
	mu       sync.Mutex
	lookPath map[string]string
	commands map[string]mockResult
	calls    []string
}

type mockResult struct {
	stdout string
	stderr string
	err    error
	block  bool
}

// NewMockRunner creates a new mock runner.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		lookPath: make(map[string]string),
		commands: make(map[string]mockResult),
	}
}

// SetLookPath configures the mock to resolve a binary name to a path.
func (m *MockRunner) SetLookPath(name, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookPath[name] = path
}

// SetCommand configures the mock result for a command. The key is either the
// bare binary name or "name arg1 arg2 ...".
func (m *MockRunner) SetCommand(key, stdout, stderr string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[key] = mockResult{stdout: stdout, stderr: stderr, err: err}
}

// SetBlocking configures a command that hangs until the context expires.
func (m *MockRunner) SetBlocking(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[key] = mockResult{block: true}
}

// Calls returns the commands run so far, in order.
func (m *MockRunner) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// LookPath implements ExecRunner.
func (m *MockRunner) LookPath(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if path, ok := m.lookPath[name]; ok {
		return path, nil
	}
	return "", exec.ErrNotFound
}

// Run implements ExecRunner.
func (m *MockRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	m.mu.Lock()
	key := name + " " + strings.Join(args, " ")
	m.calls = append(m.calls, key)

	result, ok := m.commands[key]
	if !ok {
		result, ok = m.commands[name]
	}
	m.mu.Unlock()

	if !ok {
		return "", "", exec.ErrNotFound
	}
	if result.block {
		<-ctx.Done()
		return "", "", ctx.Err()
	}
	return result.stdout, result.stderr, result.err
}

// package testing contains shared testing utilities
package testing

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// MockPrompter is a test double for [ui.Prompter] with scripted answers.
type MockPrompter struct {
	Answers  []string // consumed by Ask in order
	Confirms []bool   // consumed by Confirm in order
	Err      error    // returned by every call when set

	asked     int
	confirmed int
}

func (m *MockPrompter) Ask(question, placeholder string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.asked >= len(m.Answers) {
		return "", nil
	}
	answer := m.Answers[m.asked]
	m.asked++
	return answer, nil
}

func (m *MockPrompter) Confirm(question string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if m.confirmed >= len(m.Confirms) {
		return false, nil
	}
	answer := m.Confirms[m.confirmed]
	m.confirmed++
	return answer, nil
}

// Call records one executor invocation.
type Call struct {
	Binary string
	Args   []string
}

// ScriptedExecutor is a test double for the pdf and transcode Executor
// interfaces. Handle decides the behaviour of each invocation; when nil the
// call is recorded and succeeds without doing anything.
type ScriptedExecutor struct {
	Calls  []Call
	Handle func(binary string, args []string, onStdout func(string)) error
}

func (e *ScriptedExecutor) Run(ctx context.Context, binary string, args []string, onStdout func(string)) error {
	e.Calls = append(e.Calls, Call{Binary: binary, Args: append([]string{}, args...)})
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.Handle != nil {
		return e.Handle(binary, args, onStdout)
	}
	return nil
}

// WriteFile creates a file with parents, failing the test on error.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

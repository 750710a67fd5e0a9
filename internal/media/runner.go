package media

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// RunResult captures what an external tool produced.
type RunResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// ToolRunner runs an external binary and reports its output and exit code.
// A non-zero exit is returned in the result, not as an error; errors are
// reserved for failures to run the tool at all.
type ToolRunner interface {
	Run(ctx context.Context, name string, args ...string) (*RunResult, error)
}

type execRunner struct{}

func NewExecRunner() ToolRunner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, name string, args ...string) (*RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &RunResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, err
	}

	return result, nil
}

package media

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_ShouldCaptureStreamsAndExitCode(t *testing.T) {
	// given
	runner := NewExecRunner()

	// when
	result, err := runner.Run(context.Background(), "sh", "-c", "printf out; printf err 1>&2; exit 3")

	// then
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "out", string(result.Stdout))
	assert.Equal(t, "err", string(result.Stderr))
}

func TestExecRunner_ShouldReportZeroExitOnSuccess(t *testing.T) {
	// given
	runner := NewExecRunner()

	// when
	result, err := runner.Run(context.Background(), "sh", "-c", "true")

	// then
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
}

func TestExecRunner_ShouldErrorWhenToolIsMissing(t *testing.T) {
	// given
	runner := NewExecRunner()

	// when
	_, err := runner.Run(context.Background(), "definitely-not-a-real-binary-name")

	// then
	assert.Error(t, err)
}

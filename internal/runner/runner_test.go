package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CapturesStdout(t *testing.T) {
	r := New()
	out, err := r.Run("echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestRun_StdoutUnmodified(t *testing.T) {
	r := New()
	out, err := r.Run(`printf 'a\nb'`)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", out)
}

func TestRun_NonZeroExitIsExitError(t *testing.T) {
	r := New()
	_, err := r.Run("echo oops >&2; exit 3")
	require.Error(t, err)

	exitErr, ok := err.(*ExitError)
	require.True(t, ok, "want *ExitError, got %T", err)
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, "oops\n", exitErr.Stderr)
}

func TestRun_TracesCommandLine(t *testing.T) {
	var traced []string
	r := &Runner{Trace: func(line string) { traced = append(traced, line) }}

	_, err := r.Run("true")
	require.NoError(t, err)
	assert.Equal(t, []string{"true"}, traced)
}

func TestRun_StderrIgnoredOnSuccess(t *testing.T) {
	r := New()
	out, err := r.Run("echo noise >&2; echo signal")
	require.NoError(t, err)
	assert.Equal(t, "signal\n", out)
}

func TestRun_TimeoutAborts(t *testing.T) {
	r := &Runner{Timeout: 50 * time.Millisecond}
	start := time.Now()
	_, err := r.Run("sleep 5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.Less(t, time.Since(start), 2*time.Second)
}

package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedepro/oferta/pkg/errors"
	"github.com/cedepro/oferta/pkg/logging"
)

func TestRunNoPipelineConfigured(t *testing.T) {
	runner := NewRunner(nil, &logging.Nop)
	assert.False(t, runner.Configured())

	_, err := runner.Run(context.Background())
	assert.ErrorIs(t, err, errors.ErrNoPipeline)
}

func TestRunMissingExecutable(t *testing.T) {
	runner := NewRunner([]string{"/nonexistent/refresh.sh"}, &logging.Nop)
	assert.False(t, runner.Configured())

	_, err := runner.Run(context.Background())
	assert.ErrorIs(t, err, errors.ErrNoPipeline)
}

func TestRunCapturesStdout(t *testing.T) {
	runner := NewRunner([]string{"echo", "updated"}, &logging.Nop)
	require.True(t, runner.Configured())

	stdout, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "updated\n", stdout)
}

func TestRunFailureCarriesOutput(t *testing.T) {
	runner := NewRunner([]string{"sh", "-c", "echo out; echo err >&2; exit 3"}, &logging.Nop)

	_, err := runner.Run(context.Background())
	require.Error(t, err)

	var perr *errors.PipelineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "out\n", perr.Stdout)
	assert.Equal(t, "err\n", perr.Stderr)
}

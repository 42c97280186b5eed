// Package pipeline runs the external scraper that refreshes the source
// spreadsheets. It is the only part of the service whose failure surfaces to
// a client as an error; data problems elsewhere degrade to empty results.
package pipeline

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"github.com/cedepro/oferta/pkg/errors"
)

// Runner executes the configured refresh command and captures its output.
type Runner struct {
	command []string
	timeout time.Duration
	logger  *zerolog.Logger
}

// NewRunner creates a runner for the given command line. An empty command
// means no pipeline is configured and Run reports ErrNoPipeline.
func NewRunner(command []string, logger *zerolog.Logger) *Runner {
	return &Runner{
		command: command,
		timeout: 10 * time.Minute,
		logger:  logger,
	}
}

// Configured reports whether a refresh command is set and its executable or
// script path exists. Commands resolved through PATH count as configured.
func (r *Runner) Configured() bool {
	if len(r.command) == 0 {
		return false
	}
	if _, err := exec.LookPath(r.command[0]); err == nil {
		return true
	}
	_, err := os.Stat(r.command[0])
	return err == nil
}

// Run executes the pipeline and returns its stdout. A missing configuration
// returns ErrNoPipeline; a failed run returns a PipelineError carrying both
// output streams so the caller can surface them.
func (r *Runner) Run(ctx context.Context) (string, error) {
	if !r.Configured() {
		return "", errors.ErrNoPipeline
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.logger.Info().Strs("command", r.command).Msg("Running refresh pipeline")

	cmd := exec.CommandContext(ctx, r.command[0], r.command[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		r.logger.Error().Err(err).Str("stderr", stderr.String()).Msg("Refresh pipeline failed")
		return "", &errors.PipelineError{
			Stdout: stdout.String(),
			Stderr: stderr.String(),
			Err:    err,
		}
	}

	r.logger.Info().Msg("Refresh pipeline completed")
	return stdout.String(), nil
}

// Package transcribe runs an external speech-to-text command against staged audio files.
package transcribe

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"album/config"
	"album/internal/domain/service"
	"album/internal/util"

	"github.com/pkg/errors"
)

// maxStderr bounds how much of the command's stderr ends up in an error.
const maxStderr = 512

type commandTranscriber struct {
	argv    []string
	timeout time.Duration
	logger  *slog.Logger
}

// NewTranscriber builds a Transcriber from transcription.command. An empty command disables transcription.
// The audio path is appended as the last argument and the command's stdout becomes the transcript.
func NewTranscriber(cfg *config.Config, logger *slog.Logger) service.Transcriber {
	return newCommandTranscriber(cfg.Transcription.Command, cfg.Transcription.Timeout, logger)
}

func newCommandTranscriber(command string, timeout time.Duration, logger *slog.Logger) *commandTranscriber {
	return &commandTranscriber{
		argv:    strings.Fields(command),
		timeout: timeout,
		logger:  logger,
	}
}

func (t *commandTranscriber) Enabled() bool {
	return len(t.argv) > 0
}

// Transcribe kills the command when the timeout elapses and reports that as a failure.
func (t *commandTranscriber) Transcribe(ctx context.Context, localPath string) (string, error) {
	if !t.Enabled() {
		return "", errors.New("transcription is not configured")
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	args := append(append([]string{}, t.argv[1:]...), localPath)
	cmd := exec.CommandContext(ctx, t.argv[0], args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", errors.Wrapf(ctx.Err(), "transcription of %s aborted after %s", localPath, util.FormatDuration(time.Since(start)))
		}

		return "", errors.Wrapf(err, "transcription command failed: %s", truncate(stderr.String(), maxStderr))
	}

	t.logger.Debug("Transcription finished",
		slog.String("file", localPath),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
		slog.Int("chars", stdout.Len()),
	)

	return strings.TrimSpace(stdout.String()), nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}

package transcribe

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"album/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell utilities")
	}
}

func TestTranscriber_Disabled(t *testing.T) {
	tr := NewTranscriber(&config.Config{Transcription: &config.TranscriptionConfig{}}, discardLogger())

	assert.False(t, tr.Enabled())
	_, err := tr.Transcribe(context.Background(), "/tmp/x.ogg")
	assert.Error(t, err)
}

func TestTranscriber_StdoutBecomesTranscript(t *testing.T) {
	requireUnix(t)

	audio := filepath.Join(t.TempDir(), "clip.ogg")
	require.NoError(t, os.WriteFile(audio, []byte("  hello from the recording \n"), 0o600))

	tr := newCommandTranscriber("cat", time.Minute, discardLogger())
	require.True(t, tr.Enabled())

	text, err := tr.Transcribe(context.Background(), audio)

	require.NoError(t, err)
	assert.Equal(t, "hello from the recording", text)
}

func TestTranscriber_CommandFailure(t *testing.T) {
	requireUnix(t)

	tr := newCommandTranscriber("cat", time.Minute, discardLogger())

	_, err := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.ogg"))

	assert.ErrorContains(t, err, "transcription command failed")
}

func TestTranscriber_Timeout(t *testing.T) {
	requireUnix(t)

	tr := newCommandTranscriber("sleep 5", 50*time.Millisecond, discardLogger())

	// sleep receives the path as a second operand; "5" alone is enough to outlive the timeout.
	_, err := tr.Transcribe(context.Background(), "0")

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate(" abc ", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
}

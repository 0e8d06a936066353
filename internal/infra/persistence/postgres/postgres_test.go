package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, _, waited := poolWait(prev, prev)
	assert.False(t, waited)

	level, attrs, waited := poolWait(prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond, InUse: 4})
	assert.True(t, waited)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Contains(t, attrs, slog.Duration("avg_wait", 5*time.Millisecond))
	assert.Contains(t, attrs, slog.Int("in_use", 4))

	level, _, waited = poolWait(prev, sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second})
	assert.True(t, waited)
	assert.Equal(t, slog.LevelWarn, level)
}

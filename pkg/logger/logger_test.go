package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("booking %s created", "a1")
	log.Warn("slot %s already taken", "10:00")

	out := buf.String()
	assert.NotContains(t, out, "booking a1 created")
	assert.Contains(t, out, "slot 10:00 already taken")
	assert.Contains(t, out, "level=WARN")
}

func TestLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Error("store unavailable: %v", "timeout")
	require.NoError(t, log.Close())
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "store unavailable: timeout")
}

package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogDisabledIsNoop(t *testing.T) {
	Disable()
	Log("adg", "nothing %d", 1)
	assert.False(t, Enabled())
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer Disable()

	Log("adg", "decompressed %d bytes", 42)

	line := buf.String()
	assert.Contains(t, line, "adg")
	assert.Contains(t, line, "decompressed 42 bytes")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestEnableAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("previous session\n"), 0644))

	require.NoError(t, Enable(path))
	Log("preset", "scan done")
	Disable()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "previous session\n"))
	assert.Contains(t, text, "Debug logging started")
	assert.Contains(t, text, "scan done")
}

func TestLogEvery(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer Disable()

	for i := 0; i < 6; i++ {
		LogEvery(3, "midi", "poll tick")
	}
	assert.Equal(t, 2, strings.Count(buf.String(), "poll tick"))
}

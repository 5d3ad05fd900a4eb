package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelsFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn, "")
	l.Info("hidden %d", 1)
	l.Warn("shown %d", 2)
	l.Error("also %s", "shown")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN shown 2")
	assert.Contains(t, out, "ERROR also shown")
}

func TestWithPrefixNests(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug, "edit").WithPrefix("store")
	l.Debug("dispatch")
	assert.Contains(t, buf.String(), "DEBUG [edit/store] dispatch")
}

func TestOffAndNil(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelOff, "").Error("nothing")
	assert.Empty(t, buf.String())
	assert.False(t, Discard().Enabled(LevelError))

	var nilLogger *Logger
	nilLogger.Info("no panic")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"": LevelInfo, "DEBUG": LevelDebug, "warning": LevelWarn, "off": LevelOff} {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shapeshifter.log")
	l, c, err := OpenFile(path, LevelInfo)
	require.NoError(t, err)
	l.Printf("saved %s", "x.yaml")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO saved x.yaml")
}

package config

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestLoadMissingUsesDefaults(t *testing.T) {
    c, err := Load(filepath.Join(t.TempDir(), "none.json"))
    require.NoError(t, err)
    assert.Equal(t, defaultMinColumn, c.MinColumn)
    assert.Equal(t, defaultSplitFraction, c.SplitFraction)
}

func TestSaveLoadRoundTrip(t *testing.T) {
    path := filepath.Join(t.TempDir(), "sub", "config.json")
    in := &Config{NoColor: true, LogFile: "/tmp/ss.log", LogLevel: "debug", MinColumn: 40, Watch: true, SplitFraction: 0.25}
    require.NoError(t, Save(path, in))
    out, err := Load(path)
    require.NoError(t, err)
    assert.Equal(t, in, out)
}

func TestLoadFixesOutOfRangeValues(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.json")
    require.NoError(t, os.WriteFile(path, []byte(`{"splitFraction": 1.5, "minColumn": -2, "logFile": "/x.log"}`), 0644))
    c, err := Load(path)
    require.NoError(t, err)
    assert.Equal(t, defaultSplitFraction, c.SplitFraction)
    assert.Equal(t, defaultMinColumn, c.MinColumn)
}

func TestLoadRejectsBadJSON(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.json")
    require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))
    _, err := Load(path)
    assert.Error(t, err)
}

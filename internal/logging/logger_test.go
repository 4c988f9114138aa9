package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesNamedLines(t *testing.T) {
	out := filepath.Join(t.TempDir(), "finder.log")

	logger, err := New(Options{OutputPaths: []string{out}})
	require.NoError(t, err)

	logger.Sugar().Warnf("store %s unreadable", "timers.json")
	logger.Sugar().Debugf("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, Name)
	assert.Contains(t, text, "store timers.json unreadable")
	assert.NotContains(t, text, "hidden at info level")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	out := filepath.Join(t.TempDir(), "finder.log")

	logger, err := New(Options{Verbose: true, JSON: true, OutputPaths: []string{out}})
	require.NoError(t, err)
	logger.Sugar().Debugf("cache hit")
	_ = logger.Sync()

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.True(t, strings.HasPrefix(line, "{"), "expected JSON encoding, got %q", line)
	assert.Contains(t, line, `"msg":"cache hit"`)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Warnf("ignored %d", 1)
	})
}

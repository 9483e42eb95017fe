package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"", LevelInfo, true},
		{"DEBUG", LevelDebug, true},
		{"warning", LevelWarn, true},
		{" error ", LevelError, true},
		{"loud", LevelInfo, false},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.in)
		if c.ok {
			require.NoError(t, err, c.in)
			assert.Equal(t, c.want, got, c.in)
		} else {
			assert.Error(t, err, c.in)
		}
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sandbox.log")
	l, err := New(Options{Level: LevelWarn, Encoding: "json", File: path})
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("saved", zap.String("path", "x.txt"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, `"msg":"saved"`), out)
	assert.Contains(t, out, `"path":"x.txt"`)
}

func TestOpenRejectsUnknownLevel(t *testing.T) {
	_, err := Open("loud", "console", "")
	assert.Error(t, err)

	l, err := Open("debug", "json", filepath.Join(t.TempDir(), "d.log"))
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))
}

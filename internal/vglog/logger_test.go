package vglog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vgrepeater/vgrepeater/internal/vglog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := vglog.New(vglog.LevelWarn, &buf)

	log.Debug("should not appear")
	log.Info("should not appear either")
	log.Warn("visible warning")

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "visible warning")
	assert.Contains(t, out, "[WARN]")
}

func TestLogger_With_AttachesField(t *testing.T) {
	var buf bytes.Buffer
	log := vglog.New(vglog.LevelInfo, &buf).With("sink", 7)

	log.Info("placed buffer")

	assert.Contains(t, buf.String(), "sink=7")
}

func TestLogger_With_DoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := vglog.New(vglog.LevelInfo, &buf)
	_ = parent.With("x", 1)

	parent.Info("plain")

	assert.NotContains(t, buf.String(), "x=1")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, vglog.LevelDebug, vglog.ParseLevel("debug"))
	require.Equal(t, vglog.LevelWarn, vglog.ParseLevel("warning"))
	require.Equal(t, vglog.LevelInfo, vglog.ParseLevel("nonsense"))
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	var n vglog.Null
	n.Debug("x")
	n.Info("x")
	n.Warn("x")
	n.Error("x")
	assert.Equal(t, n, n.With("k", "v"))
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", vglog.LevelDebug.String())
	assert.Equal(t, "ERROR", vglog.LevelError.String())
	assert.True(t, strings.Contains(vglog.Level(99).String(), "UNKNOWN"))
}

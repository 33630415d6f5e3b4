package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New("debug", "json", &buf)
	l.WithField("key", "theme").Debug("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "theme", line["key"])
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	l := New("loud", "text", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, l.Level)
}

func TestDiscardWritesNothing(t *testing.T) {
	l := Discard()
	l.Error("ignored")
	assert.Equal(t, logrus.InfoLevel, l.Level)
}

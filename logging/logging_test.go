package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", "text", &buf)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.Debug("probe skipped")
	assert.Contains(t, buf.String(), "probe skipped")
}

func TestNewUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("loud", "text", &buf)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "unknown log level")

	buf.Reset()
	log.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "json", &buf)
	log.WithField("probe", "battery").Info("omitted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "battery", entry["probe"])
	assert.Equal(t, "omitted", entry["msg"])
}

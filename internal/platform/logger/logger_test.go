package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat("yaml"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: zerolog.InfoLevel, Format: FormatJSON, App: "shelter-api", Out: &buf})

	log.Debug().Msg("hidden")
	log.Info().Int64("adopter_id", 3).Msg("adopter created")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "shelter-api", entry["app"])
	assert.Equal(t, "adopter created", entry["message"])
	assert.Equal(t, float64(3), entry["adopter_id"])
	assert.Contains(t, entry, "time")
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: zerolog.DebugLevel, Format: FormatText, Out: &buf})

	log.Debug().Str("dialect", "sqlite").Msg("opening pool")

	out := buf.String()
	assert.Contains(t, out, "opening pool")
	assert.Contains(t, out, "dialect=sqlite")
}

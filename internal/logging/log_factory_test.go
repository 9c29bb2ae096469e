package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/dadrus/bestmatch/internal/config"
)

func TestNewTextLogger(t *testing.T) {
	// GIVEN
	buf := &bytes.Buffer{}
	logger := NewLogger(config.LoggingConfig{Format: config.LogTextFormat, Level: zerolog.InfoLevel}, buf)

	// WHEN
	logger.Info().Str("_pattern", "a,*").Msg("Hello bestmatch")
	logger.Debug().Msg("suppressed")

	// THEN
	data := buf.String()
	assert.NotContains(t, data, "{")
	assert.NotContains(t, data, "short_message")
	assert.Contains(t, data, "Hello bestmatch")
	assert.Contains(t, data, "_pattern=a,*")
	assert.NotContains(t, data, "suppressed")
}

func TestNewGelfLogger(t *testing.T) {
	// GIVEN
	buf := &bytes.Buffer{}
	logger := NewLogger(config.LoggingConfig{Format: config.LogGelfFormat, Level: zerolog.DebugLevel}, buf)

	// WHEN
	logger.Info().Msg("Hello bestmatch")

	// THEN
	data := buf.String()
	assert.Contains(t, data, `{`)
	assert.Contains(t, data, `}`)
	assert.Contains(t, data, `"_level_name":"INFO"`)
	assert.Contains(t, data, `"version":"1.1"`)
	assert.Contains(t, data, `"host"`)
	assert.Contains(t, data, `"timestamp"`)
	assert.Contains(t, data, `"level":6`)
	assert.Contains(t, data, `"short_message":"Hello bestmatch"`)
}

func TestToSyslogLevel(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		from zerolog.Level
		to   SyslogLevel
	}{
		"trace":           {from: zerolog.TraceLevel, to: Debugging},
		"debug":           {from: zerolog.DebugLevel, to: Debugging},
		"info":            {from: zerolog.InfoLevel, to: Informational},
		"warn":            {from: zerolog.WarnLevel, to: Warning},
		"error":           {from: zerolog.ErrorLevel, to: Error},
		"fatal":           {from: zerolog.FatalLevel, to: Critical},
		"panic":           {from: zerolog.PanicLevel, to: Alert},
		"everything else": {from: zerolog.Level(10), to: Emergency},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			syslogLevel := toSyslogLevel(tc.from)

			// THEN
			assert.Equal(t, tc.to, syslogLevel)
		})
	}
}

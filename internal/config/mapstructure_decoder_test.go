package config

import (
	"reflect"
	"testing"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/bestmatch/internal/bestmatch"
)

func TestLogLevelDecodeHookFunc(t *testing.T) {
	t.Parallel()

	levelType := reflect.TypeOf(zerolog.Level(0))

	for value, expected := range map[string]zerolog.Level{
		"panic":    zerolog.PanicLevel,
		"fatal":    zerolog.FatalLevel,
		"error":    zerolog.ErrorLevel,
		"warn":     zerolog.WarnLevel,
		"info":     zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		"trace":    zerolog.TraceLevel,
		"disabled": zerolog.Disabled,
		"unknown":  zerolog.ErrorLevel,
	} {
		t.Run(value, func(t *testing.T) {
			t.Parallel()

			// WHEN
			result, err := logLevelDecodeHookFunc(reflect.TypeOf(value), levelType, value)

			// THEN
			require.NoError(t, err)
			assert.Equal(t, expected, result)
		})
	}

	result, err := logLevelDecodeHookFunc(reflect.TypeOf(1), levelType, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result)
}

func TestLogFormatDecodeHookFunc(t *testing.T) {
	t.Parallel()

	formatType := reflect.TypeOf(LogTextFormat)
	stringType := reflect.TypeOf("")

	result, err := logFormatDecodeHookFunc(stringType, formatType, "gelf")
	require.NoError(t, err)
	assert.Equal(t, LogGelfFormat, result)

	result, err = logFormatDecodeHookFunc(stringType, formatType, "text")
	require.NoError(t, err)
	assert.Equal(t, LogTextFormat, result)

	result, err = logFormatDecodeHookFunc(stringType, stringType, "gelf")
	require.NoError(t, err)
	assert.Equal(t, "gelf", result)
}

func TestByteSizeDecodeHookFunc(t *testing.T) {
	t.Parallel()

	sizeType := reflect.TypeOf(bytesize.ByteSize(0))
	stringType := reflect.TypeOf("")

	result, err := byteSizeDecodeHookFunc(stringType, sizeType, "4KB")
	require.NoError(t, err)
	assert.Equal(t, 4*bytesize.KB, result)

	result, err = byteSizeDecodeHookFunc(stringType, stringType, "4KB")
	require.NoError(t, err)
	assert.Equal(t, "4KB", result)

	_, err = byteSizeDecodeHookFunc(stringType, sizeType, "lots")
	require.Error(t, err)
	require.ErrorIs(t, err, bestmatch.ErrConfiguration)
}

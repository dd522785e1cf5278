package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	cases := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Level(tc.verbosity), "verbosity %d", tc.verbosity)
	}
}

func TestSetupWritesComponent(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	var buf bytes.Buffer
	Setup(1, &buf, true)

	logger := GetLogger("batch")
	logger.Info().Msg("hello")
	logger.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "component=batch")
	assert.NotContains(t, out, "hidden")
}

func TestLogOperationStart(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	var buf bytes.Buffer
	Setup(2, &buf, true)

	done := LogOperationStart(GetLogger("test"), "pair")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "operation=pair")
}

package testlogger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/platform-mesh/traceware/logger"
)

func TestTestLogger(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		testLogger := New()

		messages, err := testLogger.GetLogMessages()

		assert.NoError(t, err)
		assert.Equal(t, 0, len(messages))
	})

	t.Run("two entries", func(t *testing.T) {
		testLogger := New().HideLogOutput()

		testLogger.Logger.Info().Msg("foo")
		testLogger.Logger.Debug().Msg("bar")

		messages, err := testLogger.GetLogMessages()

		assert.NoError(t, err)
		assert.Equal(t, 2, len(messages))
		assert.Equal(t, zerolog.InfoLevel, messages[0].Level)
		assert.Equal(t, zerolog.DebugLevel, messages[1].Level)
	})

	t.Run("custom attributes", func(t *testing.T) {
		testLogger := New().HideLogOutput()

		testLogger.Logger.Info().
			Str("customStr", "attribute").
			Int("customInt", 1).
			Msg("foo")

		messages, err := testLogger.GetLogMessages()

		assert.NoError(t, err)
		assert.Equal(t, 1, len(messages))
		assert.Equal(t, "attribute", messages[0].Attributes["customStr"])
		assert.Equal(t, float64(1), messages[0].Attributes["customInt"])
	})

	t.Run("messages for level", func(t *testing.T) {
		testLogger := New().HideLogOutput()

		testLogger.Logger.Info().Msg("foo")
		testLogger.Logger.Error().Msg("bar")

		errorMessages, err := testLogger.GetErrorMessages()
		assert.NoError(t, err)
		assert.Equal(t, 1, len(errorMessages))

		infoMessages, err := testLogger.GetMessagesForLevel(logger.Level(zerolog.InfoLevel))
		assert.NoError(t, err)
		assert.Equal(t, 1, len(infoMessages))
	})
}

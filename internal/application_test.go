package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/ReuterJo/Othello/internal/apperror"
	"github.com/ReuterJo/Othello/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel: "info",
		Players:  config.Players{White: "Bob", Black: "Sarah"},
		Glyphs:   config.Glyphs{Empty: "-", White: "W", Black: "B", Hint: "*"},
	}
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Plays moves from the input with configured glyphs", func(t *testing.T) {
		// Given: a config with custom glyphs
		var out bytes.Buffer

		// When: black plays one move and the input ends
		err := Run(context.Background(), logger, testConfig(), strings.NewReader("2 3\n"), &out)

		// Then: the game ran with the configured names and glyphs
		require.NoError(t, err)
		assert.Contains(t, out.String(), "3 - - - W B - - -\n")
		assert.Contains(t, out.String(), "Sarah (black) played (2, 3), captured 1.")
		assert.Contains(t, out.String(), "Bob (white) to move")
	})

	t.Run("Missing player name fails", func(t *testing.T) {
		conf := testConfig()
		conf.Players.Black = ""

		err := Run(context.Background(), logger, conf, strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, apperror.ErrInvalidPlayerName)
	})

	t.Run("Canceled context ends the run", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Run(ctx, logger, testConfig(), strings.NewReader("2 3\n"), io.Discard)

		require.NoError(t, err)
	})
}

func TestGlyphsFromConfig(t *testing.T) {
	glyphs := glyphsFromConfig(config.Glyphs{White: "W"})

	assert.Equal(t, "W", glyphs.White)
	assert.Equal(t, "X", glyphs.Black)
	assert.Equal(t, ".", glyphs.Empty)
	assert.Equal(t, "*", glyphs.Hint)
}

package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ReuterJo/Othello/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWriteFailed = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestBoard(t *testing.T) {
	t.Run("Renders the opening with headers", func(t *testing.T) {
		// Given: the opening position
		grid := entity.NewBoard().Grid()
		var buf bytes.Buffer

		// When: rendering with default glyphs
		err := Board(&buf, grid, DefaultGlyphs())
		require.NoError(t, err)

		// Then: rows and columns are numbered from zero
		expected := "" +
			"  0 1 2 3 4 5 6 7\n" +
			"0 . . . . . . . .\n" +
			"1 . . . . . . . .\n" +
			"2 . . . . . . . .\n" +
			"3 . . . O X . . .\n" +
			"4 . . . X O . . .\n" +
			"5 . . . . . . . .\n" +
			"6 . . . . . . . .\n" +
			"7 . . . . . . . .\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("Marks hints on empty cells only", func(t *testing.T) {
		// Given: black's legal moves plus an occupied cell
		board := entity.NewBoard()
		hints := append(board.LegalMoves(entity.Black), entity.Position{Row: 3, Col: 3}, entity.Position{Row: 9, Col: 9})
		var buf bytes.Buffer

		// When: rendering with hints
		err := Board(&buf, board.Grid(), DefaultGlyphs(), hints...)
		require.NoError(t, err)

		// Then: only the empty legal cells get the hint glyph
		assert.Contains(t, buf.String(), "2 . . . * . . . .\n")
		assert.Contains(t, buf.String(), "3 . . * O X . . .\n")
		assert.Contains(t, buf.String(), "4 . . . X O * . .\n")
	})

	t.Run("Custom glyphs", func(t *testing.T) {
		var buf bytes.Buffer
		glyphs := Glyphs{Empty: "-", White: "W", Black: "B", Hint: "?"}

		err := Board(&buf, entity.NewBoard().Grid(), glyphs)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "3 - - - W B - - -\n")
	})

	t.Run("Write errors are returned", func(t *testing.T) {
		err := Board(failingWriter{}, entity.NewBoard().Grid(), DefaultGlyphs())

		require.ErrorIs(t, err, errWriteFailed)
	})
}

func TestMoves(t *testing.T) {
	assert.Equal(t, "none", Moves(nil))
	assert.Equal(t, "(2, 3) (3, 2)", Moves([]entity.Position{{Row: 2, Col: 3}, {Row: 3, Col: 2}}))
}

func TestScore(t *testing.T) {
	assert.Equal(t, "white piece: 2 black piece: 5", Score(entity.Score{White: 2, Black: 5}))
}

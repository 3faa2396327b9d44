package entity

import (
	"fmt"

	"github.com/ReuterJo/Othello/internal/apperror"
)

// Glyphs used by the text notation: one rune per cell, rows top to bottom.
const (
	GlyphEmpty = '.'
	GlyphWhite = 'O'
	GlyphBlack = 'X'
)

// ParseGrid - builds a Grid from BoardSize rows of BoardSize glyphs each.
func ParseGrid(rows ...string) (Grid, error) {
	var grid Grid

	if len(rows) != BoardSize {
		return grid, fmt.Errorf("%w: expected %d rows, got %d", apperror.ErrInvalidCell, BoardSize, len(rows))
	}

	for row, line := range rows {
		cells := []rune(line)
		if len(cells) != BoardSize {
			return grid, fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidCell, row, len(cells))
		}

		for col, glyph := range cells {
			switch glyph {
			case GlyphEmpty:
				grid[row][col] = Empty
			case GlyphWhite:
				grid[row][col] = White
			case GlyphBlack:
				grid[row][col] = Black
			default:
				return grid, fmt.Errorf("%w: %q at %s", apperror.ErrInvalidCell, glyph, Position{Row: row, Col: col})
			}
		}
	}

	return grid, nil
}

// MustParseGrid is like ParseGrid but panics on malformed input. Meant for fixtures.
func MustParseGrid(rows ...string) Grid {
	grid, err := ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	return grid
}

// String renders the grid in the same notation ParseGrid reads, rows separated by newlines.
func (that Grid) String() string {
	buf := make([]rune, 0, BoardSize*(BoardSize+1))
	for row := range that {
		for _, cell := range that[row] {
			switch cell {
			case White:
				buf = append(buf, GlyphWhite)
			case Black:
				buf = append(buf, GlyphBlack)
			default:
				buf = append(buf, GlyphEmpty)
			}
		}
		if row < BoardSize-1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}

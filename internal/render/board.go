package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ReuterJo/Othello/internal/entity"
)

type Glyphs struct {
	Empty string
	White string
	Black string
	Hint  string
}

func DefaultGlyphs() Glyphs {
	return Glyphs{
		Empty: string(entity.GlyphEmpty),
		White: string(entity.GlyphWhite),
		Black: string(entity.GlyphBlack),
		Hint:  "*",
	}
}

func (that Glyphs) cell(color entity.Color) string {
	switch color {
	case entity.White:
		return that.White
	case entity.Black:
		return that.Black
	default:
		return that.Empty
	}
}

// Board - writes the grid with column numbers on top and row numbers on the left.
// Cells listed in hints are drawn with the hint glyph.
func Board(w io.Writer, grid entity.Grid, glyphs Glyphs, hints ...entity.Position) error {
	var hinted [entity.BoardSize][entity.BoardSize]bool
	for _, pos := range hints {
		if pos.InRange() {
			hinted[pos.Row][pos.Col] = true
		}
	}

	var sb strings.Builder

	sb.WriteString(" ")
	for col := 0; col < entity.BoardSize; col++ {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(col))
	}
	sb.WriteString("\n")

	for row := range grid {
		sb.WriteString(strconv.Itoa(row))
		for col, cell := range grid[row] {
			sb.WriteString(" ")
			if hinted[row][col] && cell == entity.Empty {
				sb.WriteString(glyphs.Hint)
				continue
			}
			sb.WriteString(glyphs.cell(cell))
		}
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func Moves(moves []entity.Position) string {
	if len(moves) == 0 {
		return "none"
	}

	parts := make([]string, 0, len(moves))
	for _, pos := range moves {
		parts = append(parts, pos.String())
	}

	return strings.Join(parts, " ")
}

func Score(score entity.Score) string {
	return fmt.Sprintf("white piece: %d black piece: %d", score.White, score.Black)
}

package entity

import (
	"fmt"
	"strings"

	"github.com/ReuterJo/Othello/internal/apperror"
)

// Color is the state of a single cell. Edge only appears on the sentinel ring
// around the playable area and is never exposed through a Grid.
type Color uint8

const (
	Empty Color = iota
	White
	Black
	Edge
)

const (
	colorEmpty = "empty"
	colorWhite = "white"
	colorBlack = "black"
	colorEdge  = "edge"
)

func (that Color) String() string {
	switch that {
	case Empty:
		return colorEmpty
	case White:
		return colorWhite
	case Black:
		return colorBlack
	case Edge:
		return colorEdge
	default:
		return fmt.Sprintf("color(%d)", uint8(that))
	}
}

// IsPlayable reports whether a player can own pieces of this color.
func (that Color) IsPlayable() bool {
	return that == White || that == Black
}

// Opponent returns the other playable color, or Empty for anything that is not playable.
func (that Color) Opponent() Color {
	switch that {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

// ParseColor - converts "white" or "black" (case-insensitive) to a playable Color.
func ParseColor(value string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case colorWhite:
		return White, nil
	case colorBlack:
		return Black, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidColor, value)
	}
}

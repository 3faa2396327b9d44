package entity

import (
	"fmt"

	"github.com/ReuterJo/Othello/internal/apperror"
)

const (
	BoardSize = 8

	// the playable area is wrapped in a one-cell ring of Edge cells so directional walks need no bounds checks.
	paddedSize = BoardSize + 2
)

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

type Direction struct {
	DRow int
	DCol int
}

// Directions - the eight king-move offsets.
var Directions = [8]Direction{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// Grid is a snapshot of the playable area, indexed [row][col].
type Grid [BoardSize][BoardSize]Color

// Count returns the number of cells holding the given color.
func (that Grid) Count(color Color) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == color {
				count++
			}
		}
	}
	return count
}

type Score struct {
	White int `json:"white"`
	Black int `json:"black"`
}

type Board struct {
	cells [paddedSize][paddedSize]Color
}

// NewBoard - creates a board in the standard starting position.
func NewBoard() *Board {
	board := newEmptyBoard()

	mid := BoardSize / 2
	board.cells[mid][mid] = White
	board.cells[mid][mid+1] = Black
	board.cells[mid+1][mid] = Black
	board.cells[mid+1][mid+1] = White

	return board
}

// NewBoardFromGrid - rebuilds a board from a snapshot taken with Grid.
func NewBoardFromGrid(grid Grid) (*Board, error) {
	board := newEmptyBoard()

	for row := range grid {
		for col, cell := range grid[row] {
			if cell != Empty && !cell.IsPlayable() {
				return nil, fmt.Errorf("%w: %s at %s", apperror.ErrInvalidCell, cell, Position{Row: row, Col: col})
			}
			board.cells[row+1][col+1] = cell
		}
	}

	return board, nil
}

func newEmptyBoard() *Board {
	board := &Board{}
	for i := 0; i < paddedSize; i++ {
		board.cells[0][i] = Edge
		board.cells[paddedSize-1][i] = Edge
		board.cells[i][0] = Edge
		board.cells[i][paddedSize-1] = Edge
	}
	return board
}

func (that *Board) Grid() Grid {
	var grid Grid
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			grid[row][col] = that.cells[row+1][col+1]
		}
	}
	return grid
}

func (that *Board) Cell(pos Position) (Color, error) {
	if !pos.InRange() {
		return Empty, fmt.Errorf("%w: %s", apperror.ErrInvalidPosition, pos)
	}
	return that.cells[pos.Row+1][pos.Col+1], nil
}

// LegalMoves - returns every empty cell where color would flank at least one opponent piece.
// The result holds no duplicates and is ordered row by row.
func (that *Board) LegalMoves(color Color) []Position {
	if !color.IsPlayable() {
		return nil
	}
	opponent := color.Opponent()

	var reachable [paddedSize][paddedSize]bool
	for row := 1; row <= BoardSize; row++ {
		for col := 1; col <= BoardSize; col++ {
			if that.cells[row][col] != color {
				continue
			}
			for _, dir := range Directions {
				endRow, endCol, skipped := that.skip(row, col, dir, opponent)
				if skipped > 0 && that.cells[endRow][endCol] == Empty {
					reachable[endRow][endCol] = true
				}
			}
		}
	}

	moves := make([]Position, 0, BoardSize)
	for row := 1; row <= BoardSize; row++ {
		for col := 1; col <= BoardSize; col++ {
			if reachable[row][col] {
				moves = append(moves, Position{Row: row - 1, Col: col - 1})
			}
		}
	}

	return moves
}

// Captures - lists the opponent pieces that placing color at pos would flip, without touching the board.
func (that *Board) Captures(color Color, pos Position) ([]Position, error) {
	if err := validatePlacement(color, pos); err != nil {
		return nil, err
	}

	opponent := color.Opponent()
	row, col := pos.Row+1, pos.Col+1

	var captured []Position
	for _, dir := range Directions {
		endRow, endCol, skipped := that.skip(row, col, dir, opponent)
		if skipped == 0 || that.cells[endRow][endCol] != color {
			continue
		}
		for step := 1; step <= skipped; step++ {
			captured = append(captured, Position{Row: row + step*dir.DRow - 1, Col: col + step*dir.DCol - 1})
		}
	}

	return captured, nil
}

// ApplyMove - places a piece of color at pos and flips every flanked line.
// Legality is the caller's concern; only the position range and the color are checked.
func (that *Board) ApplyMove(color Color, pos Position) (Grid, error) {
	captured, err := that.Captures(color, pos)
	if err != nil {
		return that.Grid(), err
	}

	that.cells[pos.Row+1][pos.Col+1] = color
	for _, flipped := range captured {
		that.cells[flipped.Row+1][flipped.Col+1] = color
	}

	return that.Grid(), nil
}

func (that *Board) TabulateScore() Score {
	grid := that.Grid()
	return Score{
		White: grid.Count(White),
		Black: grid.Count(Black),
	}
}

// Winner - compares the current material; it does not check whether the game is over.
func (that *Board) Winner() GameResult {
	return that.TabulateScore().Result()
}

// skip walks from (row, col) in padded coordinates along dir over consecutive opponent pieces.
// It returns the first cell past the run and the run length. The Edge ring bounds the walk.
func (that *Board) skip(row, col int, dir Direction, opponent Color) (int, int, int) {
	row, col = row+dir.DRow, col+dir.DCol

	skipped := 0
	for that.cells[row][col] == opponent {
		row, col = row+dir.DRow, col+dir.DCol
		skipped++
	}

	return row, col, skipped
}

func validatePlacement(color Color, pos Position) error {
	if !color.IsPlayable() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidColor, color)
	}
	if !pos.InRange() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidPosition, pos)
	}
	return nil
}

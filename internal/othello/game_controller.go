package othello

import (
	"fmt"
	"slices"

	"github.com/ReuterJo/Othello/internal/apperror"
	"github.com/ReuterJo/Othello/internal/entity"
)

type Outcome uint8

const (
	OutcomeMoved Outcome = iota
	OutcomePassed
	OutcomeRejected
	OutcomeGameOver
)

func (that Outcome) String() string {
	switch that {
	case OutcomeMoved:
		return "moved"
	case OutcomePassed:
		return "passed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeGameOver:
		return "game over"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(that))
	}
}

// TurnResult - what a single ply produced. LegalMoves is only set on a rejection,
// Score and Result only at game over.
type TurnResult struct {
	Outcome    Outcome
	Board      entity.Grid
	LegalMoves []entity.Position
	Captured   []entity.Position
	Score      entity.Score
	Result     entity.GameResult
}

// PlayTurn - runs one ply for color on board.
//
// The game is over when neither color can move; the active color passes when only it cannot.
// A requested position outside the active color's legal set is rejected. In all three cases the
// board is left untouched and the matching apperror is returned together with the result.
func PlayTurn(board *entity.Board, color entity.Color, pos entity.Position) (TurnResult, error) {
	if !color.IsPlayable() {
		return TurnResult{Outcome: OutcomeRejected, Board: board.Grid()}, fmt.Errorf("%w: %s", apperror.ErrInvalidColor, color)
	}

	active := board.LegalMoves(color)
	inactive := board.LegalMoves(color.Opponent())

	if len(active) == 0 && len(inactive) == 0 {
		score := board.TabulateScore()
		return TurnResult{
			Outcome: OutcomeGameOver,
			Board:   board.Grid(),
			Score:   score,
			Result:  score.Result(),
		}, apperror.ErrGameFinished
	}

	if len(active) == 0 {
		return TurnResult{
			Outcome:    OutcomePassed,
			Board:      board.Grid(),
			LegalMoves: active,
		}, apperror.ErrNoLegalMove
	}

	if err := validateMove(active, pos); err != nil {
		return TurnResult{
			Outcome:    OutcomeRejected,
			Board:      board.Grid(),
			LegalMoves: active,
		}, fmt.Errorf("invalid turn: %w", err)
	}

	captured, err := board.Captures(color, pos)
	if err != nil {
		return TurnResult{Outcome: OutcomeRejected, Board: board.Grid(), LegalMoves: active}, err
	}

	grid, err := board.ApplyMove(color, pos)
	if err != nil {
		return TurnResult{Outcome: OutcomeRejected, Board: grid, LegalMoves: active}, err
	}

	return TurnResult{
		Outcome:  OutcomeMoved,
		Board:    grid,
		Captured: captured,
	}, nil
}

// validateMove - checks the position is on the board and in the legal set.
func validateMove(legal []entity.Position, pos entity.Position) error {
	if !pos.InRange() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidPosition, pos)
	}

	if !slices.Contains(legal, pos) {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidMove, pos)
	}

	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ReuterJo/Othello/internal/apperror"
	"github.com/ReuterJo/Othello/internal/entity"
	"github.com/ReuterJo/Othello/internal/render"
)

var errMalformedMove = errors.New("malformed move")

const helpText = `Commands:
  <row> <col>  place a piece, rows and columns are numbered 0-7
  moves        list your legal moves
  board        show the board
  score        show the current score
  quit         leave the game
`

func (that *Server) handleMove(_ context.Context, fields []string) error {
	pos, err := parsePosition(fields)
	if err != nil {
		that.printf("Could not read a move from %q. Enter row and column, e.g. 2 3.\n", strings.Join(fields, " "))
		return nil
	}

	turn := that.session.Turn()

	result, err := that.session.MakeTurn(turn, pos)
	switch {
	case err == nil:
		that.logger.Debug("move played", "color", turn.String(), "position", pos.String())
		that.printf("%s (%s) played %s, captured %d.\n", that.session.PlayerName(turn), turn, pos, len(result.Captured))
		return that.printBoard()
	case errors.Is(err, apperror.ErrInvalidMove), errors.Is(err, apperror.ErrInvalidPosition):
		that.printf("Invalid move\n")
		that.printf("Here are the valid moves: %s\n", render.Moves(result.LegalMoves))
		return nil
	case errors.Is(err, apperror.ErrNoLegalMove), errors.Is(err, apperror.ErrGameFinished):
		// resolved by advance on the next iteration
		return nil
	default:
		return fmt.Errorf("failed to make turn: %w", err)
	}
}

func (that *Server) handleBoard(_ context.Context, _ []string) error {
	return that.printBoard()
}

func (that *Server) handleMoves(_ context.Context, _ []string) error {
	that.printf("Here are the valid moves: %s\n", render.Moves(that.session.LegalMoves(that.session.Turn())))
	return nil
}

func (that *Server) handleScore(_ context.Context, _ []string) error {
	that.printf("%s\n", render.Score(that.session.Score()))
	that.printf("%s\n", that.session.Winner())
	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	that.printf("%s", helpText)
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	return errQuit
}

// parsePosition accepts "r c", "r,c" and "r, c".
func parsePosition(fields []string) (entity.Position, error) {
	parts := strings.FieldsFunc(strings.Join(fields, " "), func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(parts) != 2 {
		return entity.Position{}, fmt.Errorf("%w: expected two numbers", errMalformedMove)
	}

	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: row: %w", errMalformedMove, err)
	}

	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: col: %w", errMalformedMove, err)
	}

	return entity.Position{Row: row, Col: col}, nil
}

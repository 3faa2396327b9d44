package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ReuterJo/Othello/internal/apperror"
	"github.com/ReuterJo/Othello/internal/entity"
	"github.com/ReuterJo/Othello/internal/othello"
)

type GameUseCase interface {
	ID() string
	Turn() entity.Color
	Board() entity.Grid
	Score() entity.Score
	LegalMoves(color entity.Color) []entity.Position
	IsFinished() bool

	MakeTurn(color entity.Color, pos entity.Position) (othello.TurnResult, error)

	PlayerName(color entity.Color) string
	Winner() string
}

type playerServiceDep interface {
	NameForColor(color entity.Color) string
	WinnerLabel(result entity.GameResult) string
}

type Option func(*gameSession) error

// WithBoard - starts the session from a snapshot instead of the standard opening.
func WithBoard(grid entity.Grid) Option {
	return func(session *gameSession) error {
		board, err := entity.NewBoardFromGrid(grid)
		if err != nil {
			return fmt.Errorf("failed to restore board: %w", err)
		}
		session.board = board
		return nil
	}
}

// WithFirstTurn - lets the given color move first. Black opens by default.
func WithFirstTurn(color entity.Color) Option {
	return func(session *gameSession) error {
		if !color.IsPlayable() {
			return fmt.Errorf("%w: %s", apperror.ErrInvalidColor, color)
		}
		session.turn = color
		return nil
	}
}

type gameSession struct {
	logger *slog.Logger

	id       string
	board    *entity.Board
	turn     entity.Color
	finished bool

	playerService playerServiceDep
}

func NewGameSession(logger *slog.Logger, playerService playerServiceDep, opts ...Option) (GameUseCase, error) {
	session := &gameSession{
		id:            uuid.NewString(),
		board:         entity.NewBoard(),
		turn:          entity.Black,
		playerService: playerService,
	}

	for _, opt := range opts {
		if err := opt(session); err != nil {
			return nil, err
		}
	}

	session.logger = logger.With("component", "session", "session", session.id)

	return session, nil
}

func (that *gameSession) ID() string {
	return that.id
}

func (that *gameSession) Turn() entity.Color {
	return that.turn
}

func (that *gameSession) Board() entity.Grid {
	return that.board.Grid()
}

func (that *gameSession) Score() entity.Score {
	return that.board.TabulateScore()
}

func (that *gameSession) LegalMoves(color entity.Color) []entity.Position {
	return that.board.LegalMoves(color)
}

func (that *gameSession) IsFinished() bool {
	return that.finished
}

// MakeTurn - plays one ply for color. The turn passes to the opponent after an accepted move
// or a forced pass; a rejected move keeps it with the same color.
func (that *gameSession) MakeTurn(color entity.Color, pos entity.Position) (othello.TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "color", color.String())

	if that.finished {
		return that.finalResult(), apperror.ErrGameFinished
	}

	if color != that.turn {
		return othello.TurnResult{Outcome: othello.OutcomeRejected, Board: that.board.Grid()}, apperror.ErrNotYourTurn
	}

	result, err := othello.PlayTurn(that.board, color, pos)

	switch {
	case err == nil:
		log.Debug("move applied", "position", pos.String(), "captured", len(result.Captured))
		that.turn = color.Opponent()
	case errors.Is(err, apperror.ErrNoLegalMove):
		log.Info("no legal move, passing")
		that.turn = color.Opponent()
	case errors.Is(err, apperror.ErrGameFinished):
		that.finished = true
		log.Info("game finished",
			"white", result.Score.White,
			"black", result.Score.Black,
			"result", result.Result.String(),
		)
	default:
		log.Debug("move rejected", "position", pos.String(), "error", err)
	}

	return result, err
}

func (that *gameSession) PlayerName(color entity.Color) string {
	return that.playerService.NameForColor(color)
}

// Winner - labels the side currently ahead; callable at any point of the game.
func (that *gameSession) Winner() string {
	return that.playerService.WinnerLabel(that.board.Winner())
}

func (that *gameSession) finalResult() othello.TurnResult {
	score := that.board.TabulateScore()
	return othello.TurnResult{
		Outcome: othello.OutcomeGameOver,
		Board:   that.board.Grid(),
		Score:   score,
		Result:  score.Result(),
	}
}

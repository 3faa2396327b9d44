package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ReuterJo/Othello/internal/apperror"
	"github.com/ReuterJo/Othello/internal/entity"
	"github.com/ReuterJo/Othello/internal/othello"
	"github.com/ReuterJo/Othello/internal/render"
)

var errQuit = errors.New("quit requested")

type session interface {
	Turn() entity.Color
	Board() entity.Grid
	Score() entity.Score
	LegalMoves(color entity.Color) []entity.Position
	IsFinished() bool

	MakeTurn(color entity.Color, pos entity.Position) (othello.TurnResult, error)

	PlayerName(color entity.Color) string
	Winner() string
}

type Options struct {
	Glyphs    render.Glyphs
	ShowHints bool
}

type Server struct {
	logger   *slog.Logger
	session  session
	out      io.Writer
	options  Options
	handlers map[string]func(ctx context.Context, args []string) error
}

func New(logger *slog.Logger, session session, out io.Writer, options Options) *Server {
	server := &Server{
		logger:   logger.With("component", "cli"),
		session:  session,
		out:      out,
		options:  options,
		handlers: make(map[string]func(context.Context, []string) error),
	}

	server.handlers["board"] = server.handleBoard
	server.handlers["moves"] = server.handleMoves
	server.handlers["score"] = server.handleScore
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start - reads commands from in until the game ends, the input is exhausted, or ctx is canceled.
func (that *Server) Start(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	if err := that.printBoard(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("input loop stopped: %w", err)
		}

		finished, err := that.advance()
		if err != nil {
			return err
		}
		if finished {
			return nil
		}

		that.printf("%s (%s) to move, enter row and column: ", that.session.PlayerName(that.session.Turn()), that.session.Turn())

		if !scanner.Scan() {
			if err = scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			that.logger.Info("input closed")
			return nil
		}

		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		if handler, ok := that.handlers[fields[0]]; ok {
			err = handler(ctx, fields[1:])
		} else {
			err = that.handleMove(ctx, fields)
		}

		if errors.Is(err, errQuit) {
			that.logger.Info("player quit")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// advance - resolves forced passes and the end of the game before prompting.
func (that *Server) advance() (bool, error) {
	for {
		turn := that.session.Turn()
		if !that.session.IsFinished() && len(that.session.LegalMoves(turn)) > 0 {
			return false, nil
		}

		result, err := that.session.MakeTurn(turn, entity.Position{})
		switch {
		case errors.Is(err, apperror.ErrNoLegalMove):
			that.printf("%s (%s) has no legal move and must pass.\n", that.session.PlayerName(turn), turn)
		case errors.Is(err, apperror.ErrGameFinished):
			that.printf("Game is ended  %s\n", render.Score(result.Score))
			that.printf("%s\n", that.session.Winner())
			return true, nil
		case err != nil:
			return false, fmt.Errorf("failed to advance turn: %w", err)
		default:
			return false, nil
		}
	}
}

func (that *Server) printBoard() error {
	var hints []entity.Position
	if that.options.ShowHints {
		hints = that.session.LegalMoves(that.session.Turn())
	}

	if err := render.Board(that.out, that.session.Board(), that.options.Glyphs, hints...); err != nil {
		return fmt.Errorf("failed to print board: %w", err)
	}

	return nil
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

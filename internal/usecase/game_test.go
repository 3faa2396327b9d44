package usecase

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReuterJo/Othello/internal/apperror"
	"github.com/ReuterJo/Othello/internal/entity"
	"github.com/ReuterJo/Othello/internal/othello"
	mockedUseCase "github.com/ReuterJo/Othello/mocks/usecase"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewGameSession(t *testing.T) {
	t.Run("Starts from the standard opening with black to move", func(t *testing.T) {
		// Given: a player service
		mockPlayerService := mockedUseCase.NewMockplayerServiceDep(t)

		// When: creating two sessions
		first, err := NewGameSession(discardLogger, mockPlayerService)
		require.NoError(t, err)
		second, err := NewGameSession(discardLogger, mockPlayerService)
		require.NoError(t, err)

		// Then: both start from the opening, black first, with distinct ids
		assert.Equal(t, entity.NewBoard().Grid(), first.Board())
		assert.Equal(t, entity.Black, first.Turn())
		assert.False(t, first.IsFinished())
		assert.NotEmpty(t, first.ID())
		assert.NotEqual(t, first.ID(), second.ID())
	})

	t.Run("Options override board and first turn", func(t *testing.T) {
		mockPlayerService := mockedUseCase.NewMockplayerServiceDep(t)
		grid := entity.MustParseGrid(
			"OX......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)

		session, err := NewGameSession(discardLogger, mockPlayerService, WithBoard(grid), WithFirstTurn(entity.White))
		require.NoError(t, err)

		assert.Equal(t, grid, session.Board())
		assert.Equal(t, entity.White, session.Turn())
	})

	t.Run("Invalid options fail", func(t *testing.T) {
		mockPlayerService := mockedUseCase.NewMockplayerServiceDep(t)
		var grid entity.Grid
		grid[0][0] = entity.Edge

		_, err := NewGameSession(discardLogger, mockPlayerService, WithBoard(grid))
		require.ErrorIs(t, err, apperror.ErrInvalidCell)

		_, err = NewGameSession(discardLogger, mockPlayerService, WithFirstTurn(entity.Empty))
		require.ErrorIs(t, err, apperror.ErrInvalidColor)
	})
}

func TestGameSession_MakeTurn(t *testing.T) {
	t.Run("Accepted move passes the turn", func(t *testing.T) {
		// Given: a new session
		session, err := NewGameSession(discardLogger, mockedUseCase.NewMockplayerServiceDep(t))
		require.NoError(t, err)

		// When: black plays a legal move
		result, err := session.MakeTurn(entity.Black, entity.Position{Row: 4, Col: 5})

		// Then: the move is applied and white is on move
		require.NoError(t, err)
		assert.Equal(t, othello.OutcomeMoved, result.Outcome)
		assert.Equal(t, entity.Score{White: 1, Black: 4}, session.Score())
		assert.Equal(t, entity.White, session.Turn())
	})

	t.Run("Playing out of turn is refused", func(t *testing.T) {
		// Given: a new session where black is on move
		session, err := NewGameSession(discardLogger, mockedUseCase.NewMockplayerServiceDep(t))
		require.NoError(t, err)
		before := session.Board()

		// When: white tries to move
		_, err = session.MakeTurn(entity.White, entity.Position{Row: 2, Col: 4})

		// Then: ErrNotYourTurn is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, before, session.Board())
		assert.Equal(t, entity.Black, session.Turn())
	})

	t.Run("Rejected move keeps the turn", func(t *testing.T) {
		// Given: a new session
		session, err := NewGameSession(discardLogger, mockedUseCase.NewMockplayerServiceDep(t))
		require.NoError(t, err)
		before := session.Board()

		// When: black plays an illegal cell
		result, err := session.MakeTurn(entity.Black, entity.Position{Row: 0, Col: 0})

		// Then: the legal set comes back, black is still on move
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, session.LegalMoves(entity.Black), result.LegalMoves)
		assert.Equal(t, before, session.Board())
		assert.Equal(t, entity.Black, session.Turn())
	})

	t.Run("Pass hands the turn to the opponent", func(t *testing.T) {
		// Given: black to move with no legal moves while white has one
		grid := entity.MustParseGrid(
			"OX......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		session, err := NewGameSession(discardLogger, mockedUseCase.NewMockplayerServiceDep(t), WithBoard(grid))
		require.NoError(t, err)

		// When: black is asked to move
		result, err := session.MakeTurn(entity.Black, entity.Position{})

		// Then: black passes and white is on move
		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
		assert.Equal(t, othello.OutcomePassed, result.Outcome)
		assert.Equal(t, grid, session.Board())
		assert.Equal(t, entity.White, session.Turn())
		assert.False(t, session.IsFinished())
	})

	t.Run("Game over is sticky", func(t *testing.T) {
		// Given: a board where neither color can move
		grid := entity.MustParseGrid(
			"XXX.....",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"......OO",
		)
		mockPlayerService := mockedUseCase.NewMockplayerServiceDep(t)
		mockPlayerService.EXPECT().
			WinnerLabel(entity.BlackWins).
			Return("Winner is black player: Sarah").
			Once()

		session, err := NewGameSession(discardLogger, mockPlayerService, WithBoard(grid))
		require.NoError(t, err)

		// When: black is asked to move
		result, err := session.MakeTurn(entity.Black, entity.Position{Row: 3, Col: 3})

		// Then: the game ends with the final score
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, othello.OutcomeGameOver, result.Outcome)
		assert.Equal(t, entity.Score{White: 2, Black: 3}, result.Score)
		assert.True(t, session.IsFinished())
		assert.Equal(t, "Winner is black player: Sarah", session.Winner())

		// And: any further turn reports the same end state
		again, err := session.MakeTurn(entity.White, entity.Position{Row: 3, Col: 3})
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, result.Score, again.Score)
		assert.Equal(t, result.Result, again.Result)
	})
}

func TestGameSession_PlayToCompletion(t *testing.T) {
	// Given: a new session
	mockPlayerService := mockedUseCase.NewMockplayerServiceDep(t)
	session, err := NewGameSession(discardLogger, mockPlayerService)
	require.NoError(t, err)

	// When: the side on move always plays its first legal move
	var last othello.TurnResult
	for ply := 0; ply < 200 && !session.IsFinished(); ply++ {
		color := session.Turn()
		moves := session.LegalMoves(color)

		pos := entity.Position{}
		if len(moves) > 0 {
			pos = moves[0]
		}

		last, err = session.MakeTurn(color, pos)
		if err != nil && !errors.Is(err, apperror.ErrGameFinished) {
			require.ErrorIs(t, err, apperror.ErrNoLegalMove, "ply %d", ply)
		}
	}

	// Then: the game ends and the reported result matches the board
	require.True(t, session.IsFinished())
	assert.Equal(t, othello.OutcomeGameOver, last.Outcome)
	assert.Equal(t, session.Score(), last.Score)
	assert.LessOrEqual(t, last.Score.White+last.Score.Black, entity.BoardSize*entity.BoardSize)
	assert.Equal(t, last.Score.Result(), last.Result)
}

func TestGameSession_PlayerName(t *testing.T) {
	mockPlayerService := mockedUseCase.NewMockplayerServiceDep(t)
	mockPlayerService.EXPECT().
		NameForColor(entity.White).
		Return("Bob").
		Once()

	session, err := NewGameSession(discardLogger, mockPlayerService)
	require.NoError(t, err)

	assert.Equal(t, "Bob", session.PlayerName(entity.White))
}

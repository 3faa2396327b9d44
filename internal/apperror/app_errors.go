package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrInvalidMove       = errors.New("invalid move")
	ErrNoLegalMove       = errors.New("no legal move, turn must pass")
	ErrInvalidPosition   = errors.New("position is out of range")
	ErrInvalidColor      = errors.New("invalid color")
	ErrInvalidCell       = errors.New("invalid cell value")
	ErrColorTaken        = errors.New("a player of that color already exists")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrInvalidPlayerName = errors.New("player name is empty")
)

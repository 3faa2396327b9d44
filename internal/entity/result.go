package entity

// GameResult is derived from a Score and never stored.
type GameResult uint8

const (
	Tie GameResult = iota
	WhiteWins
	BlackWins
)

func (that GameResult) String() string {
	switch that {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	default:
		return "tie"
	}
}

// WinnerColor returns the color that won, or Empty on a tie.
func (that GameResult) WinnerColor() Color {
	switch that {
	case WhiteWins:
		return White
	case BlackWins:
		return Black
	default:
		return Empty
	}
}

func (that Score) Result() GameResult {
	switch {
	case that.White > that.Black:
		return WhiteWins
	case that.Black > that.White:
		return BlackWins
	default:
		return Tie
	}
}

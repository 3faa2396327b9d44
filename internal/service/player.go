package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ReuterJo/Othello/internal/apperror"
	"github.com/ReuterJo/Othello/internal/entity"
)

const missingPlayerName = "Invalid - a player of that color was not found"

type PlayerService interface {
	CreatePlayer(name string, color entity.Color) (*entity.Player, error)
	GetPlayerByColor(color entity.Color) (*entity.Player, error)
	Players() []*entity.Player

	NameForColor(color entity.Color) string
	WinnerLabel(result entity.GameResult) string
}

type playerRepo interface {
	Create(player *entity.Player) error
	GetByColor(color entity.Color) (*entity.Player, error)
	List() []*entity.Player
}

type playerService struct {
	playerRepo playerRepo
}

func NewPlayerService(playerRepo playerRepo) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
	}
}

func (that *playerService) CreatePlayer(name string, color entity.Color) (*entity.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.ErrInvalidPlayerName
	}

	if !color.IsPlayable() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidColor, color)
	}

	player := entity.NewPlayer(name, color)
	if err := that.playerRepo.Create(player); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	return player, nil
}

func (that *playerService) GetPlayerByColor(color entity.Color) (*entity.Player, error) {
	player, err := that.playerRepo.GetByColor(color)
	if err != nil {
		return nil, fmt.Errorf("get player by color: %w", err)
	}

	return player, nil
}

func (that *playerService) Players() []*entity.Player {
	return that.playerRepo.List()
}

// NameForColor - returns the player's name, or a placeholder when nobody plays that color.
func (that *playerService) NameForColor(color entity.Color) string {
	player, err := that.playerRepo.GetByColor(color)
	if errors.Is(err, apperror.ErrPlayerNotFound) || player == nil {
		return missingPlayerName
	}

	return player.Name
}

func (that *playerService) WinnerLabel(result entity.GameResult) string {
	switch result {
	case entity.WhiteWins:
		return "Winner is white player: " + that.NameForColor(entity.White)
	case entity.BlackWins:
		return "Winner is black player: " + that.NameForColor(entity.Black)
	default:
		return "It's a tie"
	}
}

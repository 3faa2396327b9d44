package repository

import (
	"fmt"
	"sync"

	"github.com/ReuterJo/Othello/internal/apperror"
	"github.com/ReuterJo/Othello/internal/entity"
)

type PlayerRepository interface {
	Create(player *entity.Player) error
	GetByColor(color entity.Color) (*entity.Player, error)
	List() []*entity.Player
}

// memPlayer keeps at most one player per color, in creation order.
type memPlayer struct {
	mu      sync.RWMutex
	players []*entity.Player
}

func NewPlayerRepository() PlayerRepository {
	return &memPlayer{}
}

func (that *memPlayer) Create(player *entity.Player) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, existing := range that.players {
		if existing.Color == player.Color {
			return fmt.Errorf("%w: %s", apperror.ErrColorTaken, player.Color)
		}
	}

	stored := *player
	that.players = append(that.players, &stored)

	return nil
}

func (that *memPlayer) GetByColor(color entity.Color) (*entity.Player, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for _, player := range that.players {
		if player.Color == color {
			found := *player
			return &found, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, color)
}

func (that *memPlayer) List() []*entity.Player {
	that.mu.RLock()
	defer that.mu.RUnlock()

	players := make([]*entity.Player, 0, len(that.players))
	for _, player := range that.players {
		copied := *player
		players = append(players, &copied)
	}

	return players
}

package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ReuterJo/Othello/internal/entity"
	"github.com/ReuterJo/Othello/internal/repository"
	"github.com/ReuterJo/Othello/internal/service"
	"github.com/ReuterJo/Othello/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

const (
	WhitePlayer = "Bob"
	BlackPlayer = "Sarah"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Players service.PlayerService
}

// New - returns a context bounded by maxWaitDuration and a registry holding one player per color.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	players := service.NewPlayerService(repository.NewPlayerRepository())
	if _, err := players.CreatePlayer(WhitePlayer, entity.White); err != nil {
		t.Fatalf("could not create white player: %v", err)
	}
	if _, err := players.CreatePlayer(BlackPlayer, entity.Black); err != nil {
		t.Fatalf("could not create black player: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Players: players,
	}
}

func (that *Suite) NewSession(opts ...usecase.Option) usecase.GameUseCase {
	that.Helper()

	session, err := usecase.NewGameSession(that.Logger, that.Players, opts...)
	if err != nil {
		that.Fatalf("could not create session: %v", err)
	}

	return session
}

package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ReuterJo/Othello/internal/config"
	"github.com/ReuterJo/Othello/internal/entity"
	"github.com/ReuterJo/Othello/internal/render"
	"github.com/ReuterJo/Othello/internal/repository"
	"github.com/ReuterJo/Othello/internal/service"
	"github.com/ReuterJo/Othello/internal/transport/cli"
	"github.com/ReuterJo/Othello/internal/usecase"
)

// RunApp - runs a game on the terminal until it ends, input closes, or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			logger.Info("Received signal, shutting down", "component", "app", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the player registry, the session and the terminal loop over in and out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	playerService := service.NewPlayerService(repository.NewPlayerRepository())
	if _, err := playerService.CreatePlayer(conf.Players.White, entity.White); err != nil {
		return fmt.Errorf("could not register white player: %w", err)
	}
	if _, err := playerService.CreatePlayer(conf.Players.Black, entity.Black); err != nil {
		return fmt.Errorf("could not register black player: %w", err)
	}

	session, err := usecase.NewGameSession(logger, playerService)
	if err != nil {
		return fmt.Errorf("could not start session: %w", err)
	}

	log.Info("Starting game", "session", session.ID(), "white", conf.Players.White, "black", conf.Players.Black)

	server := cli.New(logger, session, out, cli.Options{
		Glyphs:    glyphsFromConfig(conf.Glyphs),
		ShowHints: conf.ShowHints,
	})

	// the terminal read blocks, so the loop runs aside and a canceled context wins the race
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(ctx, in)
	}()

	select {
	case err = <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("terminal loop error: %w", err)
		}
		log.Info("Game session closed", "session", session.ID(), "finished", session.IsFinished())
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func glyphsFromConfig(conf config.Glyphs) render.Glyphs {
	glyphs := render.DefaultGlyphs()
	if conf.Empty != "" {
		glyphs.Empty = conf.Empty
	}
	if conf.White != "" {
		glyphs.White = conf.White
	}
	if conf.Black != "" {
		glyphs.Black = conf.Black
	}
	if conf.Hint != "" {
		glyphs.Hint = conf.Hint
	}
	return glyphs
}

package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	engine := minimax.NewEngine()
	botService := service.NewBotService(logger, engine)

	gameConsole := console.New(logger, os.Stdin, os.Stdout, botService, console.Options{
		HumanMark: conf.GetHumanMark(),
		SelfPlay:  conf.IsSelfPlay(),
	})

	log.Info("Starting game", "mode", conf.Mode, "humanMark", conf.HumanMark)

	if err := gameConsole.Run(ctx); err != nil {
		return fmt.Errorf("game run failed: %w", err)
	}

	return nil
}

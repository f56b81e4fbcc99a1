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

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs one console game on stdin/stdout until it ends or a signal arrives.
func RunApp(logger *slog.Logger) error {
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

	return Run(ctx, logger, os.Stdin, os.Stdout)
}

// Run wires the game and plays it on in/out.
func Run(ctx context.Context, logger *slog.Logger, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	botService := service.NewBotService(logger)
	gameUseCase := usecase.NewGameUseCase(logger, botService)
	consoleServer := console.New(logger, gameUseCase, in, out)

	err := consoleServer.Start(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrInputClosed):
		log.Warn("input closed before the game ended", "error", err)
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("Application context canceled, shutting down")
		return nil
	default:
		return fmt.Errorf("console game failed: %w", err)
	}
}

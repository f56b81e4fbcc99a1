package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf, os.Stderr)

	if err := app.RunApp(logger); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

const configFile = "config.yml"

// initConfig - reads config.yml from the working directory, falling back to the environment.
func initConfig() *config.Config {
	dir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to resolve working directory: %w", err))
	}

	return loadConfig(dir)
}

func loadConfig(dir string) *config.Config {
	return config.MustLoad(filepath.Join(dir, configFile))
}

// initialize logger. Logs go to stderr, stdout belongs to the board.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if conf.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

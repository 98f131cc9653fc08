package main

import (
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/TillWege/Carnival/internal/app"
	"github.com/TillWege/Carnival/internal/config"
)

func init() {

	// GL and the window system must stay on the main thread
	runtime.LockOSThread()

}

func main() {
	os.Exit(run())
}

func run() int {

	cfg, err := config.Load(config.Path())
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	// Load has already validated the level
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Info("app start", "time", app.Timestamp(time.Now()), "backend", cfg.Backend, "mode", cfg.RenderMode)

	a, err := app.Bootstrap(cfg)
	if err != nil {
		slog.Error("failed to start", "error", err)
		return 1
	}

	a.Run()
	a.Close()

	slog.Info("app quit", "time", app.Timestamp(time.Now()))
	return 0

}

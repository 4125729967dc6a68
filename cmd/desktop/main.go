package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/starwarp/internal/config"
	"github.com/tomz197/starwarp/internal/desktop"
	"github.com/tomz197/starwarp/internal/game"
)

func main() {
	dotErr := config.LoadDotEnv()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "desktop",
		Level:           config.LogLevel(),
	})
	if dotErr != nil {
		logger.Warn("ignoring dotenv", "err", dotErr)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("starwarp")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TargetFPS)

	if err := ebiten.RunGame(desktop.New(game.DefaultConfig(), logger)); err != nil {
		logger.Error("game ended with error", "err", err)
		os.Exit(1)
	}
}

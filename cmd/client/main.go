package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/pong/client/fonts"
	"github.com/cbodonnell/pong/client/game"
	"github.com/cbodonnell/pong/pkg/config"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	multiplayer := flag.Bool("multiplayer", false, "Two players on one keyboard")
	difficulty := flag.String("difficulty", "normal", "Computer opponent difficulty: easy, normal or hard")
	targetScore := flag.Int("target-score", 10, "Points needed to win a match")
	fontFamily := flag.String("font", "mplus", "Font family: mplus or gomono")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	cfg := config.Load()
	// flags win over the environment, but only when given
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "multiplayer":
			cfg.Multiplayer = *multiplayer
		case "difficulty":
			cfg.Difficulty = *difficulty
		case "target-score":
			cfg.TargetScore = *targetScore
		}
	})
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Failed to validate config: %v", err))
	}

	family, err := fonts.ParseFamily(*fontFamily)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse font family: %v", err))
	}
	fontCache, err := fonts.NewCache(family)
	if err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
	log.Debug("Using font family %s", fontCache.Family())

	g, err := game.NewGame(game.NewGameOptions{
		Debug:  *debug,
		Config: cfg,
		Fonts:  fontCache,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	log.Info("Starting pong: multiplayer=%t difficulty=%s target=%d", cfg.Multiplayer, cfg.Difficulty, cfg.TargetScore)

	ebiten.SetWindowSize(int(cfg.ArenaWidth), int(cfg.ArenaHeight))
	ebiten.SetWindowTitle("Pong")
	// keep updating while unfocused so losing focus pauses the match
	ebiten.SetRunnableOnUnfocused(true)
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}

package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/alejandro-mc/connect4/internal/config"
	"github.com/alejandro-mc/connect4/internal/game/events"
	"github.com/alejandro-mc/connect4/internal/game/events/subscribers"
	"github.com/alejandro-mc/connect4/internal/logging"
	"github.com/alejandro-mc/connect4/internal/session"
	"github.com/alejandro-mc/connect4/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	depth := flag.Int("depth", 0, "Search depth (0 to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}
	if *depth > 0 {
		if err := config.Set("search.depth", *depth); err != nil {
			log.Fatal().Err(err).Msg("Invalid -depth")
		}
	}
	cfg := config.Get()

	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	logger.Debug().Str("config_file", config.ConfigFilePath()).Msg("Configuration loaded")

	eventLogger := subscribers.NewLoggerSubscriber("ui_logger", logger, zerolog.DebugLevel)
	eventLogger.SetDevMode(cfg.Logging.DevMode)
	eventLogger.SetEventFilter(cfg.Logging.Events)

	bus := events.NewEventBus()
	bus.Subscribe(eventLogger)

	sess, err := session.New(session.OptionsFromConfig(cfg), bus, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create session")
	}

	uiGame, err := ui.NewUIGame(sess, cfg, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start game")
	}

	ebiten.SetWindowSize(cfg.UI.Window.Width, cfg.UI.Window.Height)
	ebiten.SetWindowTitle(cfg.UI.Window.Title)

	if err := ebiten.RunGame(uiGame); err != nil {
		log.Fatal().Err(err).Msg("Game loop failed")
	}
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/alejandro-mc/connect4/internal/config"
	"github.com/alejandro-mc/connect4/internal/game/events"
	"github.com/alejandro-mc/connect4/internal/game/events/subscribers"
	"github.com/alejandro-mc/connect4/internal/logging"
	"github.com/alejandro-mc/connect4/internal/session"
	"github.com/alejandro-mc/connect4/internal/ui/console"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	depth := flag.Int("depth", 0, "Search depth (0 to use config default)")
	watch := flag.Bool("watch-config", false, "Log changes to the config file")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}

	// Flags override the config when set
	if *logLevel != "" {
		if err := config.Set("logging.level", *logLevel); err != nil {
			log.Fatal().Err(err).Msg("Invalid -log-level")
		}
	}
	if *depth > 0 {
		if err := config.Set("search.depth", *depth); err != nil {
			log.Fatal().Err(err).Msg("Invalid -depth")
		}
	}
	cfg := config.Get()

	// Stdout belongs to the game, logs go to stderr.
	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	logger.Debug().Str("config_file", config.ConfigFilePath()).Msg("Configuration loaded")

	if *watch {
		config.WatchConfig(func(e fsnotify.Event) {
			logger.Info().Str("file", e.Name).Msg("Config file changed; restart to apply")
		})
	}

	eventLogger := subscribers.NewLoggerSubscriber("console_logger", logger, zerolog.DebugLevel)
	eventLogger.SetDevMode(cfg.Logging.DevMode)
	eventLogger.SetEventFilter(cfg.Logging.Events)

	bus := events.NewEventBus()
	bus.Subscribe(eventLogger)

	sess, err := session.New(session.OptionsFromConfig(cfg), bus, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create session")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := console.New(sess, bus, os.Stdin, os.Stdout, console.SymbolsFrom(cfg.Console.Symbols), logger)
	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("Console exited with error")
		stop()
		os.Exit(1)
	}
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/alejandro-mc/connect4/internal/game/core"
	"github.com/alejandro-mc/connect4/internal/game/events"
)

// Player modes
const (
	ModeSingle = "single"
	ModeMulti  = "multi"
)

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
	UI      UIConfig      `mapstructure:"ui"`
	Colors  ColorsConfig  `mapstructure:"colors"`
	Console ConsoleConfig `mapstructure:"console"`
}

// GameConfig holds the rules a new game starts with
type GameConfig struct {
	Board          BoardConfig `mapstructure:"board"`
	MinDim         int         `mapstructure:"min_dim"`
	Mode           string      `mapstructure:"mode"`
	ComputerPlayer int         `mapstructure:"computer_player"`
}

// BoardConfig holds the grid size
type BoardConfig struct {
	Height int `mapstructure:"height"`
	Width  int `mapstructure:"width"`
}

// SearchConfig holds computer player settings
type SearchConfig struct {
	Depth    int  `mapstructure:"depth"`
	Parallel bool `mapstructure:"parallel"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level   string   `mapstructure:"level"`
	Format  string   `mapstructure:"format"`
	DevMode bool     `mapstructure:"dev_mode"` // attach the full event as JSON
	Events  []string `mapstructure:"events"`   // event types to log, empty for all
}

// UIConfig holds graphical client configuration
type UIConfig struct {
	Window WindowConfig `mapstructure:"window"`
	Game   UIGameConfig `mapstructure:"game"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// UIGameConfig holds UI game settings
type UIGameConfig struct {
	CellSize      int `mapstructure:"cell_size"`
	ComputerDelay int `mapstructure:"computer_delay"`
}

// ColorsConfig holds RGB colours for the graphical client
type ColorsConfig struct {
	Board     [3]int `mapstructure:"board"`
	Empty     [3]int `mapstructure:"empty"`
	Player1   [3]int `mapstructure:"player_1"`
	Player2   [3]int `mapstructure:"player_2"`
	Highlight [3]int `mapstructure:"highlight"`
}

// ConsoleConfig holds text client settings
type ConsoleConfig struct {
	Symbols []string `mapstructure:"symbols"`
}

var (
	// current is replaced whole on every reload and never mutated.
	current atomic.Pointer[Config]
	v       *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.board.height", 6)
	v.SetDefault("game.board.width", 7)
	v.SetDefault("game.min_dim", core.MinDim)
	v.SetDefault("game.mode", ModeSingle)
	v.SetDefault("game.computer_player", 2)

	// Search defaults
	v.SetDefault("search.depth", 4)
	v.SetDefault("search.parallel", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.dev_mode", false)
	v.SetDefault("logging.events", []string{})

	// UI defaults
	v.SetDefault("ui.window.width", 640)
	v.SetDefault("ui.window.height", 600)
	v.SetDefault("ui.window.title", "Connect Four")
	v.SetDefault("ui.game.cell_size", 64)
	v.SetDefault("ui.game.computer_delay", 30)

	// Color defaults
	v.SetDefault("colors.board", []int{30, 60, 160})
	v.SetDefault("colors.empty", []int{235, 235, 235})
	v.SetDefault("colors.player_1", []int{210, 40, 40})
	v.SetDefault("colors.player_2", []int{240, 200, 30})
	v.SetDefault("colors.highlight", []int{255, 255, 255})

	// Console defaults
	v.SetDefault("console.symbols", []string{"-", "X", "O"})
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/connect4")
	}

	// C4_GAME_BOARD_HEIGHT overrides game.board.height
	v.SetEnvPrefix("C4")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Only a missing file falls back to defaults. A file that exists but
		// cannot be parsed is always an error.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return reload()
}

// reload decodes and validates the viper state into a fresh Config and
// publishes it only if it is valid.
func reload() error {
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	current.Store(next)
	return nil
}

// Get returns the global config instance
func Get() *Config {
	if c := current.Load(); c != nil {
		return c
	}
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	return current.Load()
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded config.
// A missing overlay is not an error.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)

	// The overlay is read on its own so the watched file stays the main one.
	overlay := viper.New()
	overlay.SetConfigFile(envFile)
	if err := overlay.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("file", envFile).Msg("No environment config overlay")
			return nil
		}
		return fmt.Errorf("error reading environment config %s: %w", envFile, err)
	}
	if err := v.MergeConfigMap(overlay.AllSettings()); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	return reload()
}

// Set overrides a single key, typically from a command line flag. The
// config is left unchanged if the new value does not validate.
func Set(key string, value interface{}) error {
	prev := v.Get(key)
	v.Set(key, value)
	if err := reload(); err != nil {
		v.Set(key, prev)
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

// ConfigFilePath returns the config file viper was pointed at, whether or
// not it existed.
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig reloads the config when its file changes. An edit that fails
// to decode or validate is logged and the previous config stays in effect.
// onChange runs only after a successful reload.
func WatchConfig(onChange func(fsnotify.Event)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if err := reload(); err != nil {
			log.Warn().Err(err).Str("file", e.Name).Msg("Ignoring invalid config change")
			return
		}
		if onChange != nil {
			onChange(e)
		}
	})
	v.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.MinDim < core.MinDim {
		return fmt.Errorf("game.min_dim must be at least %d", core.MinDim)
	}
	if c.Game.Board.Height < c.Game.MinDim || c.Game.Board.Width < c.Game.MinDim {
		return fmt.Errorf("game.board dimensions must be at least %d", c.Game.MinDim)
	}
	if c.Game.Mode != ModeSingle && c.Game.Mode != ModeMulti {
		return fmt.Errorf("game.mode must be %q or %q", ModeSingle, ModeMulti)
	}
	if c.Game.ComputerPlayer != int(core.Player1) && c.Game.ComputerPlayer != int(core.Player2) {
		return fmt.Errorf("game.computer_player must be 1 or 2")
	}

	if c.Search.Depth < 1 {
		return fmt.Errorf("search.depth must be at least 1")
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json")
	}
	for _, t := range c.Logging.Events {
		if !events.IsKnownType(t) {
			return fmt.Errorf("logging.events: unknown event type %q", t)
		}
	}

	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}
	if c.UI.Game.CellSize <= 0 {
		return fmt.Errorf("ui.game.cell_size must be positive")
	}
	if c.UI.Game.ComputerDelay < 0 {
		return fmt.Errorf("ui.game.computer_delay must be non-negative")
	}

	validateRGB := func(rgb [3]int, name string) error {
		for i, v := range rgb {
			if v < 0 || v > 255 {
				return fmt.Errorf("%s[%d] must be between 0 and 255", name, i)
			}
		}
		return nil
	}
	for name, rgb := range map[string][3]int{
		"colors.board":     c.Colors.Board,
		"colors.empty":     c.Colors.Empty,
		"colors.player_1":  c.Colors.Player1,
		"colors.player_2":  c.Colors.Player2,
		"colors.highlight": c.Colors.Highlight,
	} {
		if err := validateRGB(rgb, name); err != nil {
			return err
		}
	}

	if len(c.Console.Symbols) != 3 {
		return fmt.Errorf("console.symbols must list empty, player 1 and player 2")
	}

	return nil
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/diegok/duopong/internal/game"
)

// Default values for configuration
const (
	DefaultPoints   = game.DefaultPointsToWin
	DefaultFPS      = 60
	DefaultEnvFile  = ".env"
	DefaultLogLevel = "info"
	EnvPrefix       = "DUOPONG_"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// KeyName is a lowercase key name such as "w" or "up"
type KeyName string

// UnmarshalYAML accepts a scalar key name in any case
func (k *KeyName) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: key name must be a string", value.Line)
	}
	*k = KeyName(strings.ToLower(strings.TrimSpace(value.Value)))
	return nil
}

type CourtConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BallConfig struct {
	Size     float64 `yaml:"size"`
	Velocity float64 `yaml:"velocity"`
}

type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Inset  float64 `yaml:"inset"`
	Step   float64 `yaml:"step"`
}

// KeyBindings names the movement key of each player
type KeyBindings struct {
	PlayerOneUp   KeyName `yaml:"player_one_up"`
	PlayerOneDown KeyName `yaml:"player_one_down"`
	PlayerTwoUp   KeyName `yaml:"player_two_up"`
	PlayerTwoDown KeyName `yaml:"player_two_down"`
}

// Config holds the application configuration
type Config struct {
	Court         CourtConfig   `yaml:"court"`
	Ball          BallConfig    `yaml:"ball"`
	Paddle        PaddleConfig  `yaml:"paddle"`
	PointsToWin   int           `yaml:"points_to_win"`
	FPS           int           `yaml:"fps"`
	RespawnDelay  time.Duration `yaml:"respawn_delay"`
	BlinkInterval time.Duration `yaml:"blink_interval"`
	KeyHold       time.Duration `yaml:"key_hold"`
	Mute          bool          `yaml:"mute"`
	LogFile       string        `yaml:"log_file"`
	LogLevel      string        `yaml:"log_level"`
	Keys          KeyBindings   `yaml:"keys"`
}

// Default returns the configuration used when nothing overrides it
func Default() Config {
	s := game.DefaultSettings()
	return Config{
		Court:         CourtConfig{Width: s.CourtWidth, Height: s.CourtHeight},
		Ball:          BallConfig{Size: s.BallSize, Velocity: s.BallVelocity},
		Paddle:        PaddleConfig{Width: s.PaddleWidth, Height: s.PaddleHeight, Inset: s.PaddleInset, Step: s.PaddleStep},
		PointsToWin:   s.PointsToWin,
		FPS:           DefaultFPS,
		RespawnDelay:  s.RespawnDelay,
		BlinkInterval: s.BlinkInterval,
		KeyHold:       s.KeyHold,
		LogLevel:      DefaultLogLevel,
		Keys: KeyBindings{
			PlayerOneUp:   "w",
			PlayerOneDown: "s",
			PlayerTwoUp:   "up",
			PlayerTwoDown: "down",
		},
	}
}

// ParseArgs builds the configuration from defaults, an optional YAML file,
// the environment (including a .env file) and finally command line flags
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("duopong", flag.ContinueOnError)

	configPath := fs.String("config", "", "path to a YAML config file")
	envFile := fs.String("env", DefaultEnvFile, "path to a .env file")
	points := fs.Int("points", DefaultPoints, "points to win (>=1)")
	fps := fs.Int("fps", DefaultFPS, "frames per second (1-240)")
	mute := fs.Bool("mute", false, "disable sound")
	logFile := fs.String("log", "", "write logs to this file")
	logLevel := fs.String("log-level", DefaultLogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()

	if *configPath != "" {
		if err := LoadFile(*configPath, &cfg); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(*envFile); err != nil {
		return nil, err
	}
	if err := ApplyEnv(&cfg, os.Getenv); err != nil {
		return nil, err
	}

	// Explicit flags win over every other layer
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "points":
			cfg.PointsToWin = *points
		case "fps":
			cfg.FPS = *fps
		case "mute":
			cfg.Mute = *mute
		case "log":
			cfg.LogFile = *logFile
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFile merges a YAML file over cfg; fields missing from the file keep
// their current values
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// loadDotEnv loads variables from a .env file without overriding the
// environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with DUOPONG_* variables read through getenv
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	intVars := map[string]*int{
		"POINTS": &cfg.PointsToWin,
		"FPS":    &cfg.FPS,
	}
	for name, dst := range intVars {
		if v := getenv(EnvPrefix + name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = n
		}
	}

	durationVars := map[string]*time.Duration{
		"RESPAWN_DELAY":  &cfg.RespawnDelay,
		"BLINK_INTERVAL": &cfg.BlinkInterval,
		"KEY_HOLD":       &cfg.KeyHold,
	}
	for name, dst := range durationVars {
		if v := getenv(EnvPrefix + name); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = d
		}
	}

	if v := getenv(EnvPrefix + "MUTE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sMUTE: %w", EnvPrefix, err)
		}
		cfg.Mute = b
	}
	if v := getenv(EnvPrefix + "LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return nil
}

// Validate checks ranges and cross-field constraints
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.PointsToWin < 1 {
		return invalid("points must be at least 1, got %d", c.PointsToWin)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return invalid("fps must be between 1 and 240, got %d", c.FPS)
	}
	if c.Court.Width <= 0 || c.Court.Height <= 0 {
		return invalid("court size must be positive, got %gx%g", c.Court.Width, c.Court.Height)
	}
	if c.Ball.Size <= 0 || c.Ball.Velocity <= 0 {
		return invalid("ball size and velocity must be positive")
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 || c.Paddle.Step <= 0 {
		return invalid("paddle width, height and step must be positive")
	}
	if c.Paddle.Height >= c.Court.Height {
		return invalid("paddle height %g must be smaller than court height %g", c.Paddle.Height, c.Court.Height)
	}
	if c.Paddle.Inset < 0 || 2*c.Paddle.Inset+c.Paddle.Width >= c.Court.Width {
		return invalid("paddle inset %g does not fit the court width %g", c.Paddle.Inset, c.Court.Width)
	}
	if c.RespawnDelay <= 0 || c.BlinkInterval <= 0 || c.KeyHold <= 0 {
		return invalid("respawn delay, blink interval and key hold must be positive")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return invalid("unknown log level %q", c.LogLevel)
	}
	return nil
}

// GameSettings converts the configuration into simulation settings
func (c *Config) GameSettings() game.Settings {
	return game.Settings{
		CourtWidth:    c.Court.Width,
		CourtHeight:   c.Court.Height,
		BallSize:      c.Ball.Size,
		BallVelocity:  c.Ball.Velocity,
		PaddleWidth:   c.Paddle.Width,
		PaddleHeight:  c.Paddle.Height,
		PaddleInset:   c.Paddle.Inset,
		PaddleStep:    c.Paddle.Step,
		PointsToWin:   c.PointsToWin,
		RespawnDelay:  c.RespawnDelay,
		BlinkInterval: c.BlinkInterval,
		KeyHold:       c.KeyHold,
	}
}

// FrameInterval is the time between two frames
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

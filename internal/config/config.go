package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// Config holds the settings of both entry points.
type Config struct {
	HTTPPort       string
	DatabaseDriver string
	DatabaseURL    string
	LogLevel       logrus.Level
	LogLevelSet    bool          // LOG_LEVEL was given explicitly
	EventDelay     time.Duration // Pause between spectator events
	RoundInterval  time.Duration // Pause between rounds at a table
	PlayerNames    [4]string
	HumanSeat      int
}

func Default() Config {
	return Config{
		HTTPPort:       "1337",
		DatabaseDriver: "sqlite3",
		DatabaseURL:    "./bela.db",
		LogLevel:       logrus.InfoLevel,
		EventDelay:     500 * time.Millisecond,
		RoundInterval:  3 * time.Second,
		PlayerNames:    [4]string{"Beki", "Zvona", "Murko", "Zorka"},
		HumanSeat:      0,
	}
}

// Load reads the environment (and a .env file, if present) on top of the defaults.
func Load() (Config, error) {
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a config from a lookup function.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("HTTP_PORT"); ok && v != "" {
		cfg.HTTPPort = v
	}
	if v, ok := lookup("DATABASE_DRIVER"); ok && v != "" {
		cfg.DatabaseDriver = v
	}
	if v, ok := lookup("DATABASE_URL"); ok && v != "" {
		cfg.DatabaseURL = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
		cfg.LogLevelSet = true
	}
	if v, ok := lookup("EVENT_DELAY"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("EVENT_DELAY: %w", err)
		}
		cfg.EventDelay = d
	}
	if v, ok := lookup("ROUND_INTERVAL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("ROUND_INTERVAL: %w", err)
		}
		cfg.RoundInterval = d
	}
	if v, ok := lookup("PLAYER_NAMES"); ok && v != "" {
		names := strings.Split(v, ",")
		if len(names) != len(cfg.PlayerNames) {
			return Config{}, fmt.Errorf("PLAYER_NAMES: expected %d names, got %d", len(cfg.PlayerNames), len(names))
		}
		for i, name := range names {
			cfg.PlayerNames[i] = strings.TrimSpace(name)
		}
	}
	if v, ok := lookup("HUMAN_SEAT"); ok && v != "" {
		seat, err := strconv.Atoi(v)
		if err != nil || seat < 0 || seat > 3 {
			return Config{}, fmt.Errorf("HUMAN_SEAT: expected a seat 0-3, got %q", v)
		}
		cfg.HumanSeat = seat
	}
	return cfg, nil
}

// SetupLogging applies the configured level to the standard logrus logger.
func (c Config) SetupLogging() {
	logrus.SetLevel(c.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

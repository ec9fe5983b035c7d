// Package config loads the game's tuning and host settings. Values start at
// the reference defaults, then a TOML file, then a .env file and the
// environment override them. Command-line flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/plus3/pong/pong"
)

// Duration is a time.Duration written as a string such as "133ms".
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Config holds every setting of the game and its host.
type Config struct {
	// Timing
	TickInterval Duration `toml:"tick_interval"`
	Splash       Duration `toml:"splash"`
	TouchTone    Duration `toml:"touch_tone"`
	GoalTone     Duration `toml:"goal_tone"`

	// Ball tuning
	MaxSpeed     int `toml:"max_speed"`
	AccelDivisor int `toml:"accel_divisor"`

	// Seed for serves; 0 draws entropy from the input devices
	Seed uint64 `toml:"seed"`

	// Host
	Scale    int    `toml:"scale"`
	Spectate string `toml:"spectate"`
	Debug    bool   `toml:"debug"`
	Mute     bool   `toml:"mute"`
}

// Default returns the reference configuration.
func Default() *Config {
	opts := pong.DefaultOptions()
	return &Config{
		TickInterval: Duration{opts.TickInterval},
		Splash:       Duration{opts.Splash},
		TouchTone:    Duration{opts.TouchTone},
		GoalTone:     Duration{opts.GoalTone},
		MaxSpeed:     opts.Court.MaxSpeed,
		AccelDivisor: opts.Court.AccelDivisor,
		Scale:        8,
	}
}

// Load builds the configuration from the defaults, the TOML file at path
// (skipped when path is empty), a .env file in the working directory if one
// exists, and PONG_* environment variables. The result is validated.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, c); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// Load .env file if it exists
	godotenv.Load()
	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() {
	c.TickInterval.Duration = getEnvDuration("PONG_TICK_INTERVAL", c.TickInterval.Duration)
	c.Splash.Duration = getEnvDuration("PONG_SPLASH", c.Splash.Duration)
	c.TouchTone.Duration = getEnvDuration("PONG_TOUCH_TONE", c.TouchTone.Duration)
	c.GoalTone.Duration = getEnvDuration("PONG_GOAL_TONE", c.GoalTone.Duration)

	c.MaxSpeed = getEnvInt("PONG_MAX_SPEED", c.MaxSpeed)
	c.AccelDivisor = getEnvInt("PONG_ACCEL_DIVISOR", c.AccelDivisor)
	c.Seed = getEnvUint("PONG_SEED", c.Seed)

	c.Scale = getEnvInt("PONG_SCALE", c.Scale)
	c.Spectate = getEnv("PONG_SPECTATE", c.Spectate)
	c.Debug = getEnvBool("PONG_DEBUG", c.Debug)
	c.Mute = getEnvBool("PONG_MUTE", c.Mute)
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.TickInterval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval))
	}
	if c.Splash.Duration < 0 {
		errs = append(errs, fmt.Errorf("splash must not be negative, got %s", c.Splash))
	}
	if c.TouchTone.Duration < 0 || c.GoalTone.Duration < 0 {
		errs = append(errs, errors.New("tones must not be negative"))
	}
	if c.MaxSpeed < 1 {
		errs = append(errs, fmt.Errorf("max_speed must be at least 1, got %d", c.MaxSpeed))
	}
	if c.AccelDivisor < 1 {
		errs = append(errs, fmt.Errorf("accel_divisor must be at least 1, got %d", c.AccelDivisor))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be at least 1, got %d", c.Scale))
	}
	return errors.Join(errs...)
}

// Save writes the configuration as TOML.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return f.Close()
}

// Court returns the reference court with the configured ball tuning.
func (c *Config) Court() pong.Court {
	court := pong.DefaultCourt()
	court.MaxSpeed = c.MaxSpeed
	court.AccelDivisor = c.AccelDivisor
	return court
}

// Options returns machine options carrying the configured timing. The
// caller plugs in the collaborators.
func (c *Config) Options() pong.Options {
	opts := pong.DefaultOptions()
	opts.Court = c.Court()
	opts.TickInterval = c.TickInterval.Duration
	opts.Splash = c.Splash.Duration
	opts.TouchTone = c.TouchTone.Duration
	opts.GoalTone = c.GoalTone.Duration
	if c.Seed != 0 {
		opts.Entropy = pong.FixedEntropy(c.Seed)
	}
	return opts
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintVal, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

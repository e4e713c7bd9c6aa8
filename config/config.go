// Package config resolves runtime settings from defaults, a config file, RUNECAST_ env vars and flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/runecast/engine"
)

const EnvPrefix = "RUNECAST"

// Keys shared by flags and config files
const (
	KeyCatalog       = "catalog"
	KeyHistoryDB     = "history-db"
	KeyNoAudio       = "no-audio"
	KeyDebug         = "debug"
	KeyKeymap        = "keymap"
	KeyCastBudget    = "cast-budget"
	KeyCooldown      = "cooldown"
	KeySegmentLength = "segment-length"
	KeySeed          = "seed"
	KeyMaxParticles  = "max-particles"
	KeyEssence       = "essence"
)

// Config is the resolved application configuration
type Config struct {
	Catalog       string         `mapstructure:"catalog"`
	HistoryDB     string         `mapstructure:"history-db"`
	NoAudio       bool           `mapstructure:"no-audio"`
	Debug         bool           `mapstructure:"debug"`
	Keymap        string         `mapstructure:"keymap"`
	CastBudget    time.Duration  `mapstructure:"cast-budget"`
	Cooldown      time.Duration  `mapstructure:"cooldown"`
	SegmentLength float64        `mapstructure:"segment-length"`
	Seed          uint64         `mapstructure:"seed"`
	MaxParticles  int            `mapstructure:"max-particles"`
	Essence       map[string]int `mapstructure:"essence"` // starting balances
}

// SetDefaults registers every key so env lookup and Unmarshal see it
func SetDefaults(v *viper.Viper) {
	d := engine.DefaultSettings()
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyHistoryDB, "runecast.db")
	v.SetDefault(KeyNoAudio, false)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyKeymap, "")
	v.SetDefault(KeyCastBudget, d.CastBudget)
	v.SetDefault(KeyCooldown, d.Cooldown)
	v.SetDefault(KeySegmentLength, d.SegmentLength)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyMaxParticles, d.MaxParticles)
	v.SetDefault(KeyEssence, map[string]int{
		"fire": 20, "air": 20, "water": 20, "light": 15, "earth": 15, "void": 10,
	})
}

// Load reads the optional config file into v and decodes the result
// Flags must already be bound to v
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the engine would silently replace
func (c *Config) Validate() error {
	var errs []error
	if c.CastBudget < 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", KeyCastBudget, c.CastBudget))
	}
	if c.Cooldown < 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", KeyCooldown, c.Cooldown))
	}
	if c.SegmentLength < 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", KeySegmentLength, c.SegmentLength))
	}
	for k, v := range c.Essence {
		if v < 0 {
			errs = append(errs, fmt.Errorf("essence %q has negative balance %d", k, v))
		}
	}
	return errors.Join(errs...)
}

// Settings converts to engine settings
func (c *Config) Settings() engine.Settings {
	return engine.Settings{
		CastBudget:    c.CastBudget,
		Cooldown:      c.Cooldown,
		SegmentLength: c.SegmentLength,
		Seed:          c.Seed,
		MaxParticles:  c.MaxParticles,
	}
}

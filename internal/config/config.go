// Package config provides Viper-based configuration loading for the battle.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. WAYFARERS_SCENE_MAX_TURNS.
const EnvPrefix = "WAYFARERS"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// SceneConfig holds battle loop settings.
type SceneConfig struct {
	// MaxTurns bounds the combat loop; 0 means unbounded.
	MaxTurns int `mapstructure:"max_turns"`
	// TiePolicy picks the winner on equal health: "antagonist", "protagonist" or "draw".
	TiePolicy string `mapstructure:"tie_policy"`
	// Color enables ANSI color in narration.
	Color bool `mapstructure:"color"`
}

// CastConfig points at a cast file. An empty Path selects the built-in cast.
type CastConfig struct {
	Path string `mapstructure:"path"`
}

// ScriptingConfig holds Lua hook settings. An empty Dir disables scripting.
type ScriptingConfig struct {
	Dir              string `mapstructure:"dir"`
	InstructionLimit int    `mapstructure:"instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Scene     SceneConfig     `mapstructure:"scene"`
	Cast      CastConfig      `mapstructure:"cast"`
	Scripting ScriptingConfig `mapstructure:"scripting"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateScene(c.Scene); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Scripting.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("scripting.instruction_limit must be >= 0, got %d", c.Scripting.InstructionLimit))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateScene(s SceneConfig) error {
	var errs []string
	if s.MaxTurns < 0 {
		errs = append(errs, fmt.Sprintf("scene.max_turns must be >= 0, got %d", s.MaxTurns))
	}
	validPolicies := map[string]bool{"antagonist": true, "protagonist": true, "draw": true}
	if !validPolicies[strings.ToLower(s.TiePolicy)] {
		errs = append(errs, fmt.Sprintf("scene.tie_policy must be one of [antagonist, protagonist, draw], got %q", s.TiePolicy))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus the environment.
//
// Precondition: path is empty or names a readable YAML file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults and WAYFARERS_ environment
// overrides registered, ready for flags or a config file to be layered on.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("scene.max_turns", 100)
	v.SetDefault("scene.tie_policy", "antagonist")
	v.SetDefault("scene.color", false)

	v.SetDefault("cast.path", "")

	v.SetDefault("scripting.dir", "")
	v.SetDefault("scripting.instruction_limit", 100_000)
}

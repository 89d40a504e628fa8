package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/viper"

	"github.com/goliatone/go-fieldcontrols/pkg/controls"
	"github.com/goliatone/go-fieldcontrols/pkg/convert"
)

const keyDelimiter = "::"

type Config struct {
	Schema string      `mapstructure:"schema"`
	Theme  ThemeConfig `mapstructure:"theme"`
	Flags  FlagsConfig `mapstructure:"flags"`
	Log    LogConfig   `mapstructure:"log"`
}

type ThemeConfig struct {
	Name     string                       `mapstructure:"name"`
	Variant  string                       `mapstructure:"variant"`
	Tokens   map[string]string            `mapstructure:"tokens"`
	Variants map[string]map[string]string `mapstructure:"variants"`
}

type FlagsConfig struct {
	TrueDisplay  string `mapstructure:"true_display"`
	FalseDisplay string `mapstructure:"false_display"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the YAML config file (or ./fieldcontrols.yaml and
// $HOME/.config/fieldcontrols when empty) and applies FIELDCONTROLS_*
// environment overrides.
func Load(configFile string) (*Config, error) {
	// Theme token names contain dots, so nested keys use "::" instead.
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("fieldcontrols")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/fieldcontrols")
	}

	v.SetEnvPrefix("FIELDCONTROLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))
	v.AutomaticEnv()

	v.SetDefault("schema", "schema.yaml")
	v.SetDefault("theme::name", "default")
	v.SetDefault("flags::true_display", convert.DefaultTrueDisplay)
	v.SetDefault("flags::false_display", convert.DefaultFalseDisplay)
	v.SetDefault("log::level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	return &cfg, nil
}

// LogLevel parses Log.Level, defaulting to info.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(c.Log.Level) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

// ThemeSelection builds the go-theme selection described by the config.
func (c *Config) ThemeSelection() *theme.Selection {
	manifest := &theme.Manifest{
		Name:   c.Theme.Name,
		Tokens: cloneTokens(c.Theme.Tokens),
	}
	if len(c.Theme.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(c.Theme.Variants))
		for name, tokens := range c.Theme.Variants {
			manifest.Variants[name] = theme.Variant{Tokens: cloneTokens(tokens)}
		}
	}
	return &theme.Selection{
		Theme:    c.Theme.Name,
		Variant:  c.Theme.Variant,
		Manifest: manifest,
	}
}

// Style derives the widget style from the theme section.
func (c *Config) Style() controls.Style {
	return controls.StyleFromTheme(c.ThemeSelection())
}

// FlagConverter builds the flag converter for display. Style tokens win over
// the flags section so themes can localise the display tokens. Identical true
// and false displays are rejected.
func (c *Config) FlagConverter() (convert.FlagConverter, error) {
	trueDisplay, falseDisplay := c.Style().FlagDisplays()
	if trueDisplay == "" {
		trueDisplay = c.Flags.TrueDisplay
	}
	if falseDisplay == "" {
		falseDisplay = c.Flags.FalseDisplay
	}
	boolean, err := convert.NewBooleanConverter(trueDisplay, falseDisplay)
	if err != nil {
		return convert.FlagConverter{}, fmt.Errorf("invalid flag displays: %w", err)
	}
	return convert.FlagConverter{Boolean: boolean}, nil
}

func cloneTokens(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

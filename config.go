package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds every setting for a run. The zero-flag, zero-file
// configuration reproduces the original generator apart from escape padding.
type Config struct {
	Art       string
	Escapes   EscapeStyle
	Template  Template
	Clipboard ClipboardMode
	LogLevel  string
	LogFormat string
	MaxWidth  int
	Theme     string
	ThemeDir  string
}

// NewViper returns a viper instance with defaults, BANNERGEN_* environment
// variables and the optional config file search path set up.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("art", "")
	v.SetDefault("escapes", string(EscapePadded))
	v.SetDefault("template.prefix", DefaultTemplate.Prefix)
	v.SetDefault("template.suffix", DefaultTemplate.Suffix)
	v.SetDefault("clipboard", string(ClipboardSystem))
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("max_width", DefaultMaxWidth)
	v.SetDefault("theme", "Dracula")
	v.SetDefault("theme_dir", "")

	v.SetEnvPrefix("BANNERGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bannergen")
	v.AddConfigPath(".")

	return v
}

// ReadConfigFile loads the config file if there is one.
func ReadConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "failed to read config file")
	}
	return nil
}

// LoadConfig reads and validates settings from v.
func LoadConfig(v *viper.Viper) (Config, error) {
	escapes, err := ParseEscapeStyle(v.GetString("escapes"))
	if err != nil {
		return Config{}, err
	}
	mode, err := ParseClipboardMode(v.GetString("clipboard"))
	if err != nil {
		return Config{}, err
	}
	maxWidth := v.GetInt("max_width")
	if maxWidth < 0 {
		return Config{}, errors.Errorf("max_width must not be negative, got %d", maxWidth)
	}

	return Config{
		Art:     v.GetString("art"),
		Escapes: escapes,
		Template: Template{
			Prefix: v.GetString("template.prefix"),
			Suffix: v.GetString("template.suffix"),
		},
		Clipboard: mode,
		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		MaxWidth:  maxWidth,
		Theme:     v.GetString("theme"),
		ThemeDir:  v.GetString("theme_dir"),
	}, nil
}

package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

var ErrInvalidLocale = errors.New("invalid grouping locale")

type Config struct {
	Server   Server   `json:"server" yaml:"server" mapstructure:"server"`
	Library  Library  `json:"library" yaml:"library" mapstructure:"library"`
	Grouping Grouping `json:"grouping" yaml:"grouping" mapstructure:"grouping"`
	Log      Log      `json:"log" yaml:"log" mapstructure:"log"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Library is the directory scanned for media files
type Library struct {
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// Grouping configures how series and file names are ordered
type Grouping struct {
	// Locale is a BCP 47 tag such as "en" or "zh-Hans"
	Locale string `json:"locale" yaml:"locale" mapstructure:"locale"`
}

type Log struct {
	Level string `json:"level" yaml:"level" mapstructure:"level"`
	JSON  bool   `json:"json" yaml:"json" mapstructure:"json"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

// LanguageTag parses the grouping locale. English is returned alongside the error for an invalid tag.
func (c Config) LanguageTag() (language.Tag, error) {
	if c.Grouping.Locale == "" {
		return language.English, nil
	}

	tag, err := language.Parse(c.Grouping.Locale)
	if err != nil {
		return language.English, fmt.Errorf("%w %q: %w", ErrInvalidLocale, c.Grouping.Locale, err)
	}

	return tag, nil
}

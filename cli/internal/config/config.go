// Package config loads rescode settings from the environment. Command-line
// flags override every value.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/aledsdavies/rescode/core/chart"
	"github.com/aledsdavies/rescode/runtime/quiz"
)

// Config holds the environment settings.
type Config struct {
	NoColor     bool   `env:"RESCODE_NO_COLOR"`
	NoColorStd  string `env:"NO_COLOR"` // https://no-color.org: any non-empty value
	Debug       bool   `env:"RESCODE_DEBUG"`
	QuizRounds  int    `env:"RESCODE_QUIZ_ROUNDS" envDefault:"10"`
	QuizMode    string `env:"RESCODE_QUIZ_MODE" envDefault:"ask"`
	ChartSeries string `env:"RESCODE_CHART_SERIES" envDefault:"E12"`
	Lang        string `env:"RESCODE_LANG" envDefault:"en"`
}

// Load parses and validates the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that are not plain strings.
func (c Config) Validate() error {
	if c.QuizRounds < 0 {
		return fmt.Errorf("RESCODE_QUIZ_ROUNDS must not be negative, got %d", c.QuizRounds)
	}
	if _, err := quiz.ParseMode(c.QuizMode); err != nil {
		return fmt.Errorf("RESCODE_QUIZ_MODE: %w", err)
	}
	if _, err := chart.ParseSeries(c.ChartSeries); err != nil {
		return fmt.Errorf("RESCODE_CHART_SERIES: %w", err)
	}
	if _, err := language.Parse(c.Lang); err != nil {
		return fmt.Errorf("RESCODE_LANG: %w", err)
	}
	return nil
}

// ColorDisabled reports whether either no-color variable is set.
func (c Config) ColorDisabled() bool {
	return c.NoColor || c.NoColorStd != ""
}

// Language returns the display language, English when Lang is invalid.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.English
	}
	return tag
}

package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type SuggestionsBotConfig struct {
	App      App
	Discord  Discord
	DB       DB
	Redis    Redis
	JokesAPI JokesAPI
	Logger   Logger
}

func LoadSuggestionsBotConfig() (SuggestionsBotConfig, error) {
	var config SuggestionsBotConfig

	if err := env.Parse(&config); err != nil {
		return SuggestionsBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

type StickyServiceConfig struct {
	App      App
	Discord  Discord
	DB       DB
	Redis    Redis
	JokesAPI JokesAPI
	Logger   Logger
}

func LoadStickyServiceConfig() (StickyServiceConfig, error) {
	var config StickyServiceConfig

	if err := env.Parse(&config); err != nil {
		return StickyServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const defaultOpenRouterURL = "https://openrouter.ai/api/v1/chat/completions"

type Config struct {
	Server     Server
	Database   Database
	OpenRouter OpenRouter
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// OpenRouter holds the provider credential and model defaults. An empty
// APIKey is a supported state: every LLM call then short-circuits to the
// offline mock payloads.
type OpenRouter struct {
	APIKey       string
	DefaultModel string
	BaseURL      string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.OpenRouter.APIKey = viper.GetString("OPENROUTER_API_KEY")
	config.OpenRouter.DefaultModel = viper.GetString("OPENROUTER_MODEL")
	config.OpenRouter.BaseURL = viper.GetString("OPENROUTER_URL")
	if config.OpenRouter.BaseURL == "" {
		config.OpenRouter.BaseURL = defaultOpenRouterURL
	}

	if config.OpenRouter.APIKey == "" {
		log.Warn().Msg("OPENROUTER_API_KEY is not set. All LLM calls will use offline mock payloads.")
	}

	log.Info().Str("port", config.Server.Port).Str("db", config.Database.Name).Msg("Config loaded")
	return &config, nil
}

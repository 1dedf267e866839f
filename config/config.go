package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// AI Configuration
	GroqAPIKey    string `mapstructure:"GROQ_API_KEY"`    // Credential for the completion service; absence forces template-only generation
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"` // OpenAI-compatible endpoint, e.g., "https://api.groq.com/openai/v1"
	ModelID       string `mapstructure:"MODEL_ID"`        // e.g., "llama-3.1-8b-instant"

	// Output Configuration
	OutputDir string `mapstructure:"OUTPUT_DIR"` // Root directory generated projects are written under
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")

	viper.AutomaticEnv() // Read environment variables that match keys

	// Defaults keep the server usable with nothing but a .env file.
	// Registering every key (even with an empty default) is what lets
	// AutomaticEnv resolve it during Unmarshal.
	viper.SetDefault("GROQ_API_KEY", "")
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.groq.com/openai/v1")
	viper.SetDefault("MODEL_ID", "llama-3.1-8b-instant")
	viper.SetDefault("OUTPUT_DIR", "output")

	// Attempt to read the config file
	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	// Unmarshal the configuration into the Config struct
	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Quotes sneak in when keys are pasted into .env files.
	config.GroqAPIKey = strings.Trim(strings.TrimSpace(config.GroqAPIKey), `"'`)

	if config.GroqAPIKey == "" {
		log.Println("WARN: GROQ_API_KEY is not set. Remote generation will fall back to templates.")
	}

	return
}

// HasCredential reports whether a completion-service credential is resolvable.
func (c Config) HasCredential() bool {
	return c.GroqAPIKey != ""
}

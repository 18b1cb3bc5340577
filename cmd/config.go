package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/etnz/growth/advisor"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds the settings read from the environment.
type Config struct {
	DataDir  string `env:"GROWTH_DATA_DIR" env-default:".growth" env-description:"Folder holding the stats and posts records"`
	Platform string `env:"GROWTH_PLATFORM" env-default:"instagram" env-description:"Platform shown when -p is not given (instagram or youtube)"`
	Model    string `env:"GROWTH_MODEL" env-default:"gemini-2.5-flash" env-description:"Gemini model used by the advisor"`
	LogLevel string `env:"GROWTH_LOG_LEVEL" env-default:"info" env-description:"Log level (debug, info, warn, error)"`
}

// DefaultConfig returns the configuration used when the environment sets
// nothing.
func DefaultConfig() *Config {
	return &Config{
		DataDir:  ".growth",
		Platform: "instagram",
		Model:    advisor.DefaultModel,
		LogLevel: "info",
	}
}

// LoadConfig loads envFile into the environment if it exists, then reads the
// configuration from the environment.
func LoadConfig(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot load %q: %w", envFile, err)
	}
	var c Config
	if err := cleanenv.ReadEnv(&c); err != nil {
		help, _ := cleanenv.GetDescription(&c, nil)
		return nil, fmt.Errorf("invalid configuration: %w\n%s", err, help)
	}
	return &c, nil
}

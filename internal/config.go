package internal

import (
	"fmt"

	"github.com/Netflix/go-env"
)

// Config is read from the environment, a .env file may be loaded beforehand.
// Its values are only defaults: command line flags take precedence.
type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	RosterFilepath string `env:"ROSTER_FILEPATH"`
	DefaultLength  int    `env:"DEFAULT_LENGTH,default=0"`
	DefaultStep    int    `env:"DEFAULT_STEP,default=0"`
}

func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

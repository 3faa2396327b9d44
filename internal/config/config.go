package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"info"`
	Players   Players `yaml:"players"`
	Glyphs    Glyphs  `yaml:"glyphs"`
	ShowHints bool    `yaml:"show-hints" env:"OTHELLO_SHOW_HINTS" env-default:"false"`
}

type Players struct {
	White string `yaml:"white" env:"OTHELLO_WHITE_PLAYER" env-default:"White"`
	Black string `yaml:"black" env:"OTHELLO_BLACK_PLAYER" env-default:"Black"`
}

type Glyphs struct {
	Empty string `yaml:"empty" env-default:"."`
	White string `yaml:"white" env-default:"O"`
	Black string `yaml:"black" env-default:"X"`
	Hint  string `yaml:"hint" env-default:"*"`
}

// Load - reads the config file at path; when the file does not exist only the environment and defaults apply.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

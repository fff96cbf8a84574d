package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrEmptyPlayerName = errors.New("player name is empty")

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BoardSize int     `yaml:"board-size" env:"BOARD_SIZE" env-default:"3"`
	Players   Players `yaml:"players"`
	MovesFile string  `yaml:"moves-file" env:"MOVES_FILE"`
}

type Players struct {
	X string `yaml:"x" env:"PLAYER_X_NAME" env-default:"Player 1"`
	O string `yaml:"o" env:"PLAYER_O_NAME" env-default:"Player 2"`
}

// Load reads the YAML file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.BoardSize != tictactoe.BoardSize {
		return fmt.Errorf("%w: %d", apperror.ErrUnsupportedBoardSize, that.BoardSize)
	}

	if that.Players.X == "" || that.Players.O == "" {
		return ErrEmptyPlayerName
	}

	return nil
}

func (that *Players) Names() entity.PlayerNames {
	return entity.PlayerNames{
		entity.PlayerX: that.X,
		entity.PlayerO: that.O,
	}
}

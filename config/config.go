package config

import (
	"os"
	"strconv"

	"grid-snake/game/types"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds the runtime settings of the game
type Config struct {
	BoardSize    int
	Seed         uint64 // 0 seeds from the clock
	WindowWidth  int
	WindowHeight int
	LogLevel     string
}

func Default() Config {
	return Config{
		BoardSize:    24,
		WindowWidth:  800,
		WindowHeight: 860,
		LogLevel:     "info",
	}
}

// Load reads an optional .env file and then the environment on top of
// the defaults. A missing .env is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Wrap(err, "failed to load env file")
	}

	cfg := Default()
	var err error
	if cfg.BoardSize, err = envInt("SNAKE_BOARD_SIZE", cfg.BoardSize); err != nil {
		return Config{}, err
	}
	if cfg.WindowWidth, err = envInt("SNAKE_WINDOW_WIDTH", cfg.WindowWidth); err != nil {
		return Config{}, err
	}
	if cfg.WindowHeight, err = envInt("SNAKE_WINDOW_HEIGHT", cfg.WindowHeight); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("SNAKE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid SNAKE_SEED %q", v)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.BoardSize < types.MinBoardSize {
		return errors.Wrapf(types.ErrBoardTooSmall, "board size %d", c.BoardSize)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return errors.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s %q", key, v)
	}
	return n, nil
}

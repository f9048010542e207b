package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/minigames/internal/memory"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Memory    Memory    `yaml:"memory" env-prefix:"MEMORY_"`
	TicTacToe TicTacToe `yaml:"tictactoe" env-prefix:"TICTACTOE_"`
}

type Memory struct {
	Difficulty   string        `yaml:"difficulty" env:"DIFFICULTY" env-default:"easy"`
	SettleDelay  time.Duration `yaml:"settle-delay" env:"SETTLE_DELAY" env-default:"1s"`
	TickInterval time.Duration `yaml:"tick-interval" env:"TICK_INTERVAL" env-default:"1s"`
	Rounds       int           `yaml:"rounds" env:"ROUNDS" env-default:"1"`
}

type TicTacToe struct {
	Rounds int `yaml:"rounds" env:"ROUNDS" env-default:"3"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) validate() error {
	if _, err := memory.ParseDifficulty(that.Memory.Difficulty); err != nil {
		return err
	}

	if that.Memory.SettleDelay <= 0 || that.Memory.TickInterval <= 0 {
		return fmt.Errorf("memory delays must be positive: settle %s, tick %s", that.Memory.SettleDelay, that.Memory.TickInterval)
	}

	if that.Memory.Rounds < 0 || that.TicTacToe.Rounds < 0 {
		return fmt.Errorf("rounds must not be negative")
	}

	return nil
}

// PairCount - pairs dealt per memory round at the configured difficulty.
func (that *Memory) PairCount() int {
	difficulty, err := memory.ParseDifficulty(that.Difficulty)
	if err != nil {
		return memory.Easy.PairCount()
	}

	return difficulty.PairCount()
}

package searcher

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nogo/game"
)

// Config enumerates every recognized search option. The exploration
// constant has no principled default, so it is required configuration.
type Config struct {
	Role        game.Color    // side the search optimizes for
	Exploration float64       // UCT exploration constant
	Budget      time.Duration // wall-clock budget per decision
	Simulations int           // fixed cycle count; overrides Budget when set
	Seed        uint64        // seed for the engine-owned RNG
}

func (c Config) validate() error {
	if c.Role != game.Black && c.Role != game.White {
		return fmt.Errorf("role must be black or white")
	}
	if c.Exploration <= 0 {
		return fmt.Errorf("exploration constant must be positive")
	}
	if c.Budget <= 0 && c.Simulations <= 0 {
		return fmt.Errorf("either a time budget or a simulation count is required")
	}
	return nil
}

// ParseConfig reads whitespace-separated key=value tokens, e.g.
// "role=black c=0.8 timeout=1000 seed=42". Unknown keys and malformed
// values are errors rather than being coerced at first use.
func ParseConfig(args string) (Config, error) {
	cfg := Config{}
	for _, token := range strings.Fields(args) {
		key, value, found := strings.Cut(token, "=")
		if !found || value == "" {
			return Config{}, fmt.Errorf("malformed option %q: want key=value", token)
		}

		switch key {
		case "role":
			switch value {
			case "black":
				cfg.Role = game.Black
			case "white":
				cfg.Role = game.White
			default:
				return Config{}, fmt.Errorf("unknown role %q", value)
			}
		case "c":
			c, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return Config{}, fmt.Errorf("option c: %w", err)
			}
			cfg.Exploration = c
		case "timeout":
			ms, err := strconv.Atoi(value)
			if err != nil {
				return Config{}, fmt.Errorf("option timeout: %w", err)
			}
			cfg.Budget = time.Duration(ms) * time.Millisecond
		case "simulation":
			n, err := strconv.Atoi(value)
			if err != nil {
				return Config{}, fmt.Errorf("option simulation: %w", err)
			}
			cfg.Simulations = n
		case "seed":
			seed, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return Config{}, fmt.Errorf("option seed: %w", err)
			}
			cfg.Seed = seed
		default:
			return Config{}, fmt.Errorf("unknown option %q", key)
		}
	}
	return cfg, nil
}

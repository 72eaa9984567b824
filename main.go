package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"nogo/agent"
	"nogo/engine"
	"nogo/game"
	"nogo/searcher"
)

func main() {
	blackSpec := flag.String("black", "mcts c=0.8 timeout=1000 seed=1", "black agent spec")
	whiteSpec := flag.String("white", "random seed=2", "white agent spec")
	games := flag.Int("games", 1, "number of games to play")
	verbose := flag.Bool("v", false, "log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	black, err := buildAgent(game.Black, *blackSpec)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid black agent spec")
	}
	white, err := buildAgent(game.White, *whiteSpec)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid white agent spec")
	}

	wins := map[game.Color]int{}
	for i := 0; i < *games; i++ {
		e, err := engine.Local(game.Board{}, black, white)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up game")
		}
		winner := e.Run()
		wins[winner]++
		log.Info().Int("game", i+1).Stringer("winner", winner).Msg("game over")
	}

	log.Info().
		Int("black", wins[game.Black]).
		Int("white", wins[game.White]).
		Msg("final tally")
}

// buildAgent constructs an agent from a spec like "mcts c=0.8 timeout=1000"
// or "random seed=7". The role comes from the side being configured.
func buildAgent(role game.Color, spec string) (agent.Agent, error) {
	kind, args, _ := strings.Cut(strings.TrimSpace(spec), " ")
	cfg, err := searcher.ParseConfig(args)
	if err != nil {
		return nil, err
	}
	cfg.Role = role

	switch kind {
	case "mcts":
		return searcher.NewMCTS(cfg)
	case "random":
		return agent.NewRandom(role, cfg.Seed), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", kind)
	}
}

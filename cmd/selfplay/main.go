package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/lk16/tackle/internal/api"
	"github.com/lk16/tackle/internal/config"
	"github.com/lk16/tackle/internal/game"
	"github.com/lk16/tackle/internal/jobs"
	"github.com/lk16/tackle/internal/searcher"
)

const maxPlies = 400

func main() {
	config.SetLogLevel()

	games := flag.Int("games", 10, "number of games to play")
	episodes := flag.Int("episodes", 500, "search episodes per move")
	goroutines := flag.Int("goroutines", 4, "search goroutines")
	cutoff := flag.Int("cutoff", 40, "rollout cutoff depth")
	archive := flag.Bool("archive", false, "upload finished games to the server")
	flag.Parse()

	mcts, err := searcher.New(*goroutines,
		searcher.WithEpisodes(*episodes),
		searcher.WithCutoff(*cutoff),
	)
	if err != nil {
		slog.Error("Failed to create searcher", "error", err)
		os.Exit(1)
	}

	var client *api.Client
	if *archive {
		client = api.NewClient(config.LoadClientConfig())
	}

	for i := range *games {
		rec, finished := playGame(mcts)
		if !finished {
			slog.Warn("Game hit the ply limit, discarding", "game", i+1)
			continue
		}

		slog.Info("Game finished",
			"game", i+1,
			"result", rec.Tags["Result"],
			"plies", len(rec.Tokens),
		)

		if client == nil {
			continue
		}
		if _, err := client.ArchiveGame(context.Background(), rec.String()); err != nil {
			slog.Error("Failed to archive game", "game", i+1, "error", err)
			os.Exit(1)
		}
	}
}

// playGame plays one full game between two searcher-driven players and
// returns its record. finished is false when the ply limit was hit first.
func playGame(mcts *searcher.MCTS) (game.Record, bool) {
	deck := jobs.Deck()
	whiteJob := deck[rand.IntN(len(deck))]
	blackJob := deck[rand.IntN(len(deck))]

	g := game.NewGame(whiteJob, blackJob)
	rec := game.NewRecord(whiteJob, blackJob)

	for g.PlyCount() < maxPlies {
		action, err := mcts.Search(g)
		if err != nil {
			// No legal actions left.
			break
		}

		if err := g.Apply(action); err != nil {
			slog.Error("Searcher produced an illegal action", "action", action, "error", err)
			os.Exit(1)
		}
		rec.AddAction(action)

		if winner, ok := g.Winner(); ok {
			rec.Tags["Result"] = winner.String()
			return rec, true
		}
	}
	return rec, false
}

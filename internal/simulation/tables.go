package simulation

import (
	"context"

	"github.com/ZygmuntJakub/skat/internal/engine"
	"github.com/ZygmuntJakub/skat/internal/player"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// TablesConfig describes a batch of independent tournaments.
type TablesConfig struct {
	Tables int
	Rounds int
	// Seed, when non-zero, seeds table i with Seed+i.
	Seed int64
	// Players seats a table. Defaults to three random bots, seeded from
	// Seed when it is non-zero.
	Players func(table int) [engine.NumSeats]engine.Player
	Logger  logrus.FieldLogger
}

// TableResult is the outcome of one table.
type TableResult struct {
	Table  int
	Scores [engine.NumSeats]float64
	Rounds []engine.Result
}

// RunTables plays every table concurrently. Tables share no state; the
// first failing table cancels the others.
func RunTables(ctx context.Context, cfg TablesConfig) ([]TableResult, error) {
	seat := cfg.Players
	if seat == nil {
		seat = func(table int) [engine.NumSeats]engine.Player {
			var players [engine.NumSeats]engine.Player
			for i := range players {
				if cfg.Seed == 0 {
					players[i] = player.NewRandomBot()
					continue
				}
				players[i] = player.NewSeededRandomBot(cfg.Seed + int64(table*engine.NumSeats+i))
			}
			return players
		}
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	results := make([]TableResult, cfg.Tables)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Tables; i++ {
		i := i
		g.Go(func() error {
			var seed int64
			if cfg.Seed != 0 {
				seed = cfg.Seed + int64(i)
			}
			t, err := NewTournament(cfg.Rounds, seat(i), seed, log.WithField("table", i))
			if err != nil {
				return err
			}
			if err := t.Run(ctx); err != nil {
				return err
			}
			results[i] = TableResult{Table: i, Scores: t.Scores, Rounds: t.Results}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

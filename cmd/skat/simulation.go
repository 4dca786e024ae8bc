package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/ZygmuntJakub/skat/internal/config"
	"github.com/ZygmuntJakub/skat/internal/simulation"
	"github.com/sirupsen/logrus"
)

// StartSimulation plays the configured number of random-bot tables and
// logs the standings of each.
func StartSimulation(cfg config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tables, err := simulation.RunTables(ctx, simulation.TablesConfig{
		Tables: cfg.SimTables,
		Rounds: cfg.SimRounds,
		Seed:   cfg.Seed,
		Logger: logrus.StandardLogger(),
	})
	if err != nil {
		logrus.WithError(err).Fatal("simulation failed")
	}
	for _, t := range tables {
		logrus.WithFields(logrus.Fields{
			"table":  t.Table,
			"rounds": len(t.Rounds),
			"seat0":  t.Scores[0],
			"seat1":  t.Scores[1],
			"seat2":  t.Scores[2],
		}).Info("table standings")
	}
}

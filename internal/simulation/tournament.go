package simulation

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ZygmuntJakub/skat/internal/engine"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Tournament plays a series of rounds between three fixed players. Every
// round skips the auction with the dealer as soloist and the dealer seat
// rotates after each round.
type Tournament struct {
	ID      uuid.UUID
	Rounds  int
	Players [engine.NumSeats]engine.Player
	Dealer  engine.Seat
	// Scores accumulate the soloist's score and charge each defender half.
	Scores  [engine.NumSeats]float64
	Results []engine.Result

	rng *rand.Rand
	log logrus.FieldLogger
}

// NewTournament prepares a tournament. A zero seed leaves the rounds
// unseeded.
func NewTournament(rounds int, players [engine.NumSeats]engine.Player, seed int64, log logrus.FieldLogger) (*Tournament, error) {
	for i, p := range players {
		if p == nil {
			return nil, fmt.Errorf("seat %d: %w", i, engine.ErrNilPlayer)
		}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	t := &Tournament{
		ID:      uuid.New(),
		Rounds:  rounds,
		Players: players,
	}
	t.log = log.WithField("tournament", t.ID)
	if seed != 0 {
		t.rng = rand.New(rand.NewSource(seed))
	}
	return t, nil
}

// Run plays all rounds, stopping at the first failure.
func (t *Tournament) Run(ctx context.Context) error {
	for i := len(t.Results); i < t.Rounds; i++ {
		res, err := t.playRound(ctx)
		if err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
		t.record(res)
		t.Dealer = t.Dealer.Next()
	}
	t.log.WithFields(logrus.Fields{"rounds": t.Rounds, "scores": t.Scores}).Info("tournament finished")
	return nil
}

func (t *Tournament) playRound(ctx context.Context) (engine.Result, error) {
	soloist := t.Dealer
	opts := engine.RoundOptions{
		Dealer:      t.Dealer,
		SkipBidding: true,
		Soloist:     &soloist,
		Logger:      t.log,
	}
	if t.rng != nil {
		seed := t.rng.Int63()
		opts.Seed = &seed
	}
	r, err := engine.NewRound(opts)
	if err != nil {
		return engine.Result{}, err
	}
	for i, p := range t.Players {
		if err := r.SetPlayer(engine.Seat(i), p); err != nil {
			return engine.Result{}, err
		}
	}
	return r.Run(ctx)
}

func (t *Tournament) record(res engine.Result) {
	t.Results = append(t.Results, res)
	score := float64(res.Score)
	t.Scores[res.Soloist] += score
	t.Scores[res.Soloist.Next()] -= score / 2
	t.Scores[res.Soloist.Next().Next()] -= score / 2
}

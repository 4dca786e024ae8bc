package player

import (
	"math/rand"

	"github.com/ZygmuntJakub/skat/internal/engine"
	"github.com/google/uuid"
)

// RandomBot makes every decision uniformly at random among the legal ones.
type RandomBot struct {
	BotName string
	rng     *rand.Rand
}

// NewRandomBot returns a bot drawing from the global source.
func NewRandomBot() engine.Player {
	return &RandomBot{}
}

// NewSeededRandomBot returns a bot with its own deterministic source.
func NewSeededRandomBot(seed int64) *RandomBot {
	return &RandomBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) Name() string {
	if b.BotName == "" {
		b.BotName = "RandomBot_" + uuid.NewString()
	}
	return b.BotName
}

func (b *RandomBot) intn(n int) int {
	if b.rng == nil {
		return rand.Intn(n)
	}
	return b.rng.Intn(n)
}

// MakeBid raises to the next ladder value half of the time.
func (b *RandomBot) MakeBid(_ *engine.View, current int) (int, error) {
	next := engine.NextBid(current)
	if next == 0 || b.intn(2) == 0 {
		return 0, nil
	}
	return next, nil
}

func (b *RandomBot) PickUpSkat(_ *engine.View) (bool, error) {
	return b.intn(2) == 1, nil
}

func (b *RandomBot) PressSkat(v *engine.View) ([]engine.Card, error) {
	idx := b.perm(len(v.Hand))
	return []engine.Card{v.Hand[idx[0]], v.Hand[idx[1]]}, nil
}

func (b *RandomBot) DeclareGame(_ *engine.View) (engine.Game, error) {
	games := engine.Games()
	return games[b.intn(len(games))], nil
}

func (b *RandomBot) PlayCard(_ *engine.View, legal []engine.Card) (engine.Card, error) {
	return legal[b.intn(len(legal))], nil
}

func (b *RandomBot) perm(n int) []int {
	if b.rng == nil {
		return rand.Perm(n)
	}
	return b.rng.Perm(n)
}

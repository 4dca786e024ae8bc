package player

import (
	"fmt"
	"sort"

	"github.com/ZygmuntJakub/skat/internal/engine"
)

// PlayerFactory builds a fresh participant for one seat.
type PlayerFactory func() engine.Player

// SeededFactory builds a fresh participant whose decisions follow seed.
type SeededFactory func(seed int64) engine.Player

type kind struct {
	build  PlayerFactory
	seeded SeededFactory
}

var kinds = map[string]kind{
	"random": {
		build:  NewRandomBot,
		seeded: func(seed int64) engine.Player { return NewSeededRandomBot(seed) },
	},
}

// New builds a player of the registered kind.
func New(name string) (engine.Player, error) {
	k, ok := kinds[name]
	if !ok {
		return nil, fmt.Errorf("unknown player kind %q", name)
	}
	return k.build(), nil
}

// NewSeeded builds a deterministic player of the registered kind.
func NewSeeded(name string, seed int64) (engine.Player, error) {
	k, ok := kinds[name]
	if !ok {
		return nil, fmt.Errorf("unknown player kind %q", name)
	}
	return k.seeded(seed), nil
}

// Kinds lists the registered player kinds.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package engine

import (
	"fmt"
	"strings"
)

// GameKind is the declared game variant.
type GameKind int

const (
	KindSuit GameKind = iota
	KindGrand
	KindNull
)

// Game is the declared variant. Trump is only meaningful for KindSuit.
type Game struct {
	Kind  GameKind
	Trump Suit
}

// NewSuitGame declares a suit game with the given trump suit.
func NewSuitGame(trump Suit) Game { return Game{Kind: KindSuit, Trump: trump} }

// NewGrandGame declares a Grand, where only the Jacks are trumps.
func NewGrandGame() Game { return Game{Kind: KindGrand} }

// NewNullGame declares a Null game: no trumps, soloist must lose every trick.
func NewNullGame() Game { return Game{Kind: KindNull} }

// Games lists every declarable game.
func Games() []Game {
	return []Game{
		NewSuitGame(Diamonds), NewSuitGame(Hearts), NewSuitGame(Spades), NewSuitGame(Clubs),
		NewGrandGame(), NewNullGame(),
	}
}

// Valid reports whether g is one of the declarable games.
func (g Game) Valid() bool {
	switch g.Kind {
	case KindSuit:
		return g.Trump >= Diamonds && g.Trump <= Clubs
	case KindGrand, KindNull:
		return true
	default:
		return false
	}
}

// BaseValue returns the base scoring multiplier.
func (g Game) BaseValue() int {
	switch g.Kind {
	case KindSuit:
		return 9 + int(g.Trump)
	case KindGrand:
		return 24
	case KindNull:
		return 23
	default:
		return 0
	}
}

// IsTrump reports whether c belongs to the game's trump set.
func (g Game) IsTrump(c Card) bool {
	switch g.Kind {
	case KindSuit:
		return c.IsJack() || c.Suit == g.Trump
	case KindGrand:
		return c.IsJack()
	default:
		return false
	}
}

// TrumpCards returns the trump set in ascending trump order.
func (g Game) TrumpCards() []Card {
	var trumps []Card
	if g.Kind == KindSuit {
		for _, r := range Ranks {
			if r != Jack {
				trumps = append(trumps, Card{Suit: g.Trump, Rank: r})
			}
		}
	}
	if g.Kind == KindSuit || g.Kind == KindGrand {
		for _, s := range Suits {
			trumps = append(trumps, Card{Suit: s, Rank: Jack})
		}
	}
	return trumps
}

// SuitCards returns the non-trump cards of suit s, ascending.
func (g Game) SuitCards(s Suit) []Card {
	ranks := Ranks[:]
	if g.Kind == KindNull {
		ranks = nullRanks[:]
	}
	var cards []Card
	for _, r := range ranks {
		c := Card{Suit: s, Rank: r}
		if !g.IsTrump(c) {
			cards = append(cards, c)
		}
	}
	return cards
}

// SortOrder returns the display order for hands in this game: trumps last,
// Jacks on top.
func (g Game) SortOrder() SortOrder {
	switch g.Kind {
	case KindSuit:
		suits := make([]Suit, 0, len(Suits))
		for _, s := range Suits {
			if s != g.Trump {
				suits = append(suits, s)
			}
		}
		suits = append(suits, g.Trump)
		return SortOrder{Suits: suits, Ranks: Ranks[:], PivotRanks: []Rank{Jack}, PivotSuits: Suits[:]}
	case KindGrand:
		return SortOrder{Suits: Suits[:], Ranks: Ranks[:], PivotRanks: []Rank{Jack}, PivotSuits: Suits[:]}
	default:
		return SortOrder{Suits: Suits[:], Ranks: nullRanks[:]}
	}
}

// NewTrick starts an empty trick governed by this game.
func (g Game) NewTrick() *Trick {
	return &Trick{game: g, plays: make([]Play, 0, NumSeats)}
}

func (g Game) String() string {
	switch g.Kind {
	case KindSuit:
		return g.Trump.Name()
	case KindGrand:
		return "grand"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// MarshalText encodes the game by name ("clubs", "grand", "null", ...).
func (g Game) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, ErrInvalidGame
	}
	return []byte(g.String()), nil
}

// UnmarshalText decodes the MarshalText form.
func (g *Game) UnmarshalText(b []byte) error {
	parsed, err := ParseGame(string(b))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// ParseGame parses a game name.
func ParseGame(s string) (Game, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, g := range Games() {
		if g.String() == name {
			return g, nil
		}
	}
	return Game{}, fmt.Errorf("%w: %q", ErrInvalidGame, s)
}

// nullRanks is the unmodified ladder used in Null: 7 8 9 10 J Q K A.
var nullRanks = [...]Rank{Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// trumpStrength orders trumps: Jacks by suit above all other trumps, which
// order by rank priority.
func trumpStrength(c Card) int {
	if c.IsJack() {
		return len(Ranks) + int(c.Suit)
	}
	return int(c.Rank)
}

// beats reports whether a wins against b when both follow the led suit and
// neither is a trump.
func (g Game) beats(a, b Card) bool {
	if g.Kind == KindNull {
		return position(nullRanks[:], a.Rank) > position(nullRanks[:], b.Rank)
	}
	return a.Outranks(b)
}

package engine

import (
	"fmt"
	"strings"
)

// DeckSize is the number of distinct cards in the pack.
const DeckSize = 32

// Card represents a playing card. Two cards are equal iff suit and rank match.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard constructs a card.
func NewCard(s Suit, r Rank) Card {
	return Card{Suit: s, Rank: r}
}

// CardAt returns the card at index i of the canonical suit-major order.
func CardAt(i int) Card {
	return Card{Suit: Suit(i / len(Ranks)), Rank: Rank(i % len(Ranks))}
}

// Index returns the card's position in the 32-card universe (suit*8+rank).
func (c Card) Index() int {
	return int(c.Suit)*len(Ranks) + int(c.Rank)
}

// Points returns the card's point value.
func (c Card) Points() int { return PointsFor(c.Rank) }

// IsJack reports whether the card is one of the four Jacks.
func (c Card) IsJack() bool { return c.Rank == Jack }

// PrecedesDisplay is the display order: suit priority first, rank priority
// second. Used for sorting only, never for deciding tricks.
func (c Card) PrecedesDisplay(other Card) bool {
	if c.Suit != other.Suit {
		return c.Suit < other.Suit
	}
	return c.Rank < other.Rank
}

// Outranks compares rank priority only and ignores suit. Only meaningful
// when both cards are already known to be comparable (same suit, or both
// non-Jack trumps).
func (c Card) Outranks(other Card) bool {
	return c.Rank > other.Rank
}

func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// MarshalText encodes the card as e.g. "♣J".
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes the MarshalText form.
func (c *Card) UnmarshalText(b []byte) error {
	parsed, err := ParseCard(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCard parses "♣J", "♥10" and friends.
func ParseCard(s string) (Card, error) {
	for _, suit := range Suits {
		sym := suit.String()
		if !strings.HasPrefix(s, sym) {
			continue
		}
		rest := strings.TrimPrefix(s, sym)
		for _, rank := range Ranks {
			if rank.String() == rest {
				return Card{Suit: suit, Rank: rank}, nil
			}
		}
	}
	return Card{}, fmt.Errorf("invalid card %q", s)
}

// FullDeck returns all 32 cards in canonical suit-major, rank-minor order.
func FullDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return cards
}

// CardMask encodes a set of cards as a membership vector over the 32-card universe.
func CardMask(cards []Card) [DeckSize]bool {
	var mask [DeckSize]bool
	for _, c := range cards {
		mask[c.Index()] = true
	}
	return mask
}

func indexOfCard(cards []Card, target Card) (int, bool) {
	for i, c := range cards {
		if c == target {
			return i, true
		}
	}
	return -1, false
}

func containsCard(cards []Card, target Card) bool {
	_, ok := indexOfCard(cards, target)
	return ok
}

func cardPoints(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}
	return sum
}

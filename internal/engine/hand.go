package engine

import (
	"fmt"
	"sort"
)

// Hand is a player's ordered collection of cards. Cards are looked up by
// value, never by position.
type Hand struct {
	cards []Card
}

// NewHand constructs a hand holding cards in the given order.
func NewHand(cards ...Card) *Hand {
	return &Hand{cards: append([]Card(nil), cards...)}
}

// Add appends received cards.
func (h *Hand) Add(cards ...Card) {
	h.cards = append(h.cards, cards...)
}

// Remove takes a card out of the hand.
func (h *Hand) Remove(c Card) error {
	idx, ok := indexOfCard(h.cards, c)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCardNotInHand, c)
	}
	h.cards = append(h.cards[:idx], h.cards[idx+1:]...)
	return nil
}

// Contains reports whether the hand holds c.
func (h *Hand) Contains(c Card) bool { return containsCard(h.cards, c) }

// Len returns the number of cards held.
func (h *Hand) Len() int { return len(h.cards) }

// Cards returns a copy of the held cards.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// Value returns the summed point value of the hand.
func (h *Hand) Value() int { return cardPoints(h.cards) }

// Vector returns the hand as a membership vector over the 32-card universe.
func (h *Hand) Vector() [DeckSize]bool { return CardMask(h.cards) }

func (h *Hand) String() string { return fmt.Sprint(h.cards) }

// SortOrder describes a display ordering. Cards whose rank is listed in
// PivotRanks are hoisted above every other card and ordered among themselves
// by PivotRanks, then PivotSuits. All other cards order by Suits, then Ranks.
// Suits or ranks missing from a sequence sort after the listed ones.
type SortOrder struct {
	Suits      []Suit
	Ranks      []Rank
	PivotRanks []Rank
	PivotSuits []Suit
}

// DisplayOrder is plain suit-major, rank-minor order.
var DisplayOrder = SortOrder{Suits: Suits[:], Ranks: Ranks[:]}

// Sort reorders the hand ascending by o. The sort is stable and total.
func (h *Hand) Sort(o SortOrder) {
	sort.SliceStable(h.cards, func(i, j int) bool {
		return o.Less(h.cards[i], h.cards[j])
	})
}

// Less reports whether a sorts before b.
func (o SortOrder) Less(a, b Card) bool {
	ka, kb := o.key(a), o.key(b)
	for i := range ka {
		if ka[i] != kb[i] {
			return ka[i] < kb[i]
		}
	}
	return false
}

func (o SortOrder) key(c Card) [4]int {
	if pr := position(o.PivotRanks, c.Rank); pr < len(o.PivotRanks) {
		return [4]int{1, pr, position(o.PivotSuits, c.Suit), c.Index()}
	}
	return [4]int{0, position(o.Suits, c.Suit), position(o.Ranks, c.Rank), c.Index()}
}

func position[T comparable](seq []T, v T) int {
	for i, x := range seq {
		if x == v {
			return i
		}
	}
	return len(seq)
}

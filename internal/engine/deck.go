package engine

import (
	"fmt"
	"math/rand"
)

const (
	HandSize = 10
	SkatSize = 2
)

// Deck is an ordered, duplicate-free pile of cards drained from the front.
type Deck struct {
	cards []Card
}

// NewDeck returns an initialized, unshuffled deck.
func NewDeck() *Deck {
	d := &Deck{}
	d.Initialize()
	return d
}

// Initialize resets the deck to the canonical 32 cards.
func (d *Deck) Initialize() {
	d.cards = FullDeck()
}

// Shuffle permutes the deck. A nil rng uses the global source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	swap := func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] }
	if rng == nil {
		rand.Shuffle(len(d.cards), swap)
		return
	}
	rng.Shuffle(len(d.cards), swap)
}

// Deal removes and returns the first n cards. Dealing past the end of the
// deck is a sequencing bug and panics.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || n > len(d.cards) {
		panic(fmt.Sprintf("engine: cannot deal %d cards from a deck of %d", n, len(d.cards)))
	}
	dealt := append([]Card(nil), d.cards[:n]...)
	d.cards = d.cards[n:]
	return dealt
}

// Len returns the number of cards left.
func (d *Deck) Len() int { return len(d.cards) }

// Cards returns a copy of the remaining cards in deal order.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// DeckLayout fixes some cards of a deal. Unset slots are filled randomly.
type DeckLayout struct {
	Hands [NumSeats][]Card
	Skat  []Card
}

// Factory builds a full deck whose deal order reproduces the layout: hand i
// occupies positions [10i, 10i+10) and the skat the last two positions.
// Fixed cards keep their given order at the start of their slot; the rest of
// every slot is drawn uniformly from the unused cards.
func Factory(layout DeckLayout, rng *rand.Rand) (*Deck, error) {
	type slot struct {
		name  string
		fixed []Card
		size  int
	}
	slots := make([]slot, 0, NumSeats+1)
	for i, h := range layout.Hands {
		slots = append(slots, slot{name: fmt.Sprintf("hand %d", i), fixed: h, size: HandSize})
	}
	slots = append(slots, slot{name: "skat", fixed: layout.Skat, size: SkatSize})

	seen := make(map[Card]struct{}, DeckSize)
	for _, s := range slots {
		if len(s.fixed) > s.size {
			return nil, fmt.Errorf("%w: %s has %d cards, max %d", ErrSlotOverflow, s.name, len(s.fixed), s.size)
		}
		for _, c := range s.fixed {
			if _, ok := seen[c]; ok {
				return nil, fmt.Errorf("%w: %s in %s", ErrDuplicateCard, c, s.name)
			}
			seen[c] = struct{}{}
		}
	}

	rest := &Deck{}
	for _, c := range FullDeck() {
		if _, ok := seen[c]; !ok {
			rest.cards = append(rest.cards, c)
		}
	}
	rest.Shuffle(rng)

	d := &Deck{cards: make([]Card, 0, DeckSize)}
	for _, s := range slots {
		d.cards = append(d.cards, s.fixed...)
		d.cards = append(d.cards, rest.Deal(s.size-len(s.fixed))...)
	}
	return d, nil
}
